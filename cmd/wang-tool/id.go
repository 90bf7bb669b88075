package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wang-tool/internal/wang"
	"github.com/woozymasta/wang-tool/internal/wangcfg"
)

type idCmd struct {
	Rotate int    `short:"r" long:"rotate" description:"Rotate clockwise by N quarter turns (negative turns counterclockwise)"`
	FlipH  bool   `long:"flip-h" description:"Flip horizontally"`
	FlipV  bool   `long:"flip-v" description:"Flip vertically"`
	Type   string `short:"t" long:"type" choice:"corner" choice:"edge" choice:"mixed" default:"mixed" description:"Keep only the fields of this set type"`
	Uint   bool   `short:"u" long:"uint" description:"Read ID as a 32-bit value with 4 bits per field"`

	Args struct {
		ID string `positional-arg-name:"ID" required:"true" description:"Eight comma separated colors, top first, clockwise"`
	} `positional-args:"true"`
}

// Execute applies the requested transforms and prints the resulting id.
func (c *idCmd) Execute(_ []string) error {
	id, err := c.parse()
	if err != nil {
		return err
	}

	typ, err := wangcfg.ParseType(c.Type)
	if err != nil {
		return err
	}

	if c.FlipH {
		id.FlipHorizontally()
	}
	if c.FlipV {
		id.FlipVertically()
	}
	id.Rotate(c.Rotate)
	id &= typ.Mask()

	fmt.Printf("id: %s\n", id)
	fmt.Printf("raw: 0x%016x\n", uint64(id))
	if v, ok := id.ToUint(); ok {
		fmt.Printf("uint: 0x%08x\n", v)
	} else {
		fmt.Printf("uint: n/a (color above 15)\n")
	}
	fmt.Printf("wildcards: %t\n", typ.HasWildCards(id))

	return nil
}

// parse reads the positional id in the selected notation.
func (c *idCmd) parse() (wang.ID, error) {
	if c.Uint {
		s := strings.TrimSpace(c.Args.ID)
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "parse uint id %q", s)
		}
		return wang.FromUint(uint32(v)), nil
	}

	id, ok := wang.ParseID(c.Args.ID)
	if !ok {
		return 0, errors.Newf("malformed wang id %q", c.Args.ID)
	}

	return id, nil
}
