package elimination_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/eliminator/elimination"
	"github.com/katalvlaran/eliminator/standings"
)

func ExampleAnalyzer_EvaluateAll() {
	st, err := standings.Read(strings.NewReader(`4
Atlanta       83 71  8  0 1 6 1
Philadelphia  80 79  3  1 0 0 2
New_York      78 78  6  6 0 0 0
Montreal      77 82  3  1 2 0 0
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	verdicts, err := elimination.NewAnalyzer(st).EvaluateAll(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range verdicts {
		if v.Eliminated {
			fmt.Println(v.Team, "is eliminated by", v.Certificate)
		} else {
			fmt.Println(v.Team, "is not eliminated")
		}
	}
	// Output:
	// Atlanta is not eliminated
	// Philadelphia is eliminated by [Atlanta New_York]
	// New_York is not eliminated
	// Montreal is eliminated by [Atlanta]
}
