// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command basic shows the smallest useful cute program.
//
//	go run ./example/basic --boolean --string=32
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/yeetrun/cute/pkg/cute"
)

type Key int

const (
	Boolean Key = iota
	String
)

func main() {
	log.SetFlags(0)

	c := cute.New[Key]()
	c.Add(cute.Switch("--boolean", Boolean))
	c.Add(cute.Option("--string", String))

	if err := c.ParseArgs(); err != nil {
		log.Fatal(err)
	}

	b, err := c.Bool(Boolean)
	if errors.Is(err, cute.ErrKeyNotFound) {
		b = false
	} else if err != nil {
		log.Fatal(err)
	}
	fmt.Println("boolean:", b)

	s, err := c.Text(String)
	switch {
	case errors.Is(err, cute.ErrKeyNotFound):
		fmt.Println("string: <unset>")
	case err != nil:
		log.Fatal(err)
	default:
		fmt.Printf("string: %q\n", s)
	}
}
