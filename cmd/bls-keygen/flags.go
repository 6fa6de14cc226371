package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"
)

// count is an optional key pair count which remembers whether it was given at all, so that an
// explicit zero can be rejected.
type count struct {
	n   uint32
	set bool
}

func (c *count) Decode(ctx *kong.DecodeContext) error {
	var s string
	if err := ctx.Scan.PopValueInto("number", &s); err != nil {
		return err
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}

	c.n, c.set = uint32(n), true

	return nil
}

func (c *count) value() *uint32 {
	if !c.set {
		return nil
	}

	n := c.n

	return &n
}

var _ kong.MapperValue = &count{}

// optionalString is a string flag which remembers whether it was given at all, so that an explicit
// empty value is not mistaken for an absent one.
type optionalString struct {
	s   string
	set bool
}

func (o *optionalString) Decode(ctx *kong.DecodeContext) error {
	if err := ctx.Scan.PopValueInto("value", &o.s); err != nil {
		return err
	}

	o.set = true

	return nil
}

var _ kong.MapperValue = &optionalString{}
