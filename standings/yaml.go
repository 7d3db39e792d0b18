package standings

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Teams []yamlTeam `yaml:"teams"`
	Games []yamlGame `yaml:"games"`
}

type yamlTeam struct {
	Name      string `yaml:"name"`
	Wins      int    `yaml:"wins"`
	Losses    int    `yaml:"losses"`
	Remaining int    `yaml:"remaining"`
}

type yamlGame struct {
	Home  string `yaml:"home"`
	Away  string `yaml:"away"`
	Count int    `yaml:"count"`
}

// ReadYAML parses the YAML format. Games reference teams by name; several
// entries for the same pair add up, so a series may be listed per venue.
func ReadYAML(r io.Reader, opts ...Option) (*Standings, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: yaml: %v", ErrMalformedSchedule, err)
	}

	teams := make([]Team, len(doc.Teams))
	index := make(map[string]int, len(doc.Teams))
	for i, t := range doc.Teams {
		teams[i] = Team{Name: t.Name, Wins: t.Wins, Losses: t.Losses, Remaining: t.Remaining}
		if _, dup := index[t.Name]; !dup {
			index[t.Name] = i
		}
	}

	games := make(map[Pair]int, len(doc.Games))
	for k, g := range doc.Games {
		a, okA := index[g.Home]
		b, okB := index[g.Away]
		switch {
		case !okA || !okB:
			return nil, fmt.Errorf("%w: game %d (%s vs %s) names an unlisted team", ErrMalformedSchedule, k, g.Home, g.Away)
		case a == b:
			return nil, fmt.Errorf("%w: game %d schedules %q against itself", ErrMalformedSchedule, k, g.Home)
		case g.Count < 0:
			return nil, fmt.Errorf("%w: game %d (%s vs %s) has a negative count", ErrMalformedSchedule, k, g.Home, g.Away)
		}
		games[MakePair(a, b)] += g.Count
	}

	return New(teams, games, opts...)
}
