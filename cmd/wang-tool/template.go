package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

type templateCmd struct {
	Set     string `short:"s" long:"set" description:"Wang set (default: the only set)"`
	Missing bool   `short:"m" long:"missing" description:"Only list ids without tiles"`
	Limit   int    `short:"n" long:"limit" default:"256" description:"List at most N ids (0 for all)"`

	Args configArgs `positional-args:"true"`
}

// Execute lists the fully specified ids of a set.
func (c *templateCmd) Execute(_ []string) error {
	_, p, err := readProject(c.Args.Config)
	if err != nil {
		return err
	}

	s, err := pickSet(p, c.Set)
	if err != nil {
		return err
	}
	if s.ColorCount() == 0 {
		return errors.Newf("wang set %q has no colors", s.Name)
	}

	size := s.CompleteSetSize()
	listed := 0
	for n := uint64(0); n < size; n++ {
		if c.Limit > 0 && listed >= c.Limit {
			break
		}

		id := s.TemplateIDAt(n)
		tiles := len(s.TilesWithID(id))
		if c.Missing && tiles > 0 {
			continue
		}

		fmt.Printf("%d: %s (%d tiles)\n", n, id, tiles)
		listed++
	}

	return nil
}
