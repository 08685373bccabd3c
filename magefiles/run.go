//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Converts the default images directory into preview.glb.
func (Run) Convert() error {
	fmt.Println("Run photomesh...")
	if _, err := executeCmd("go", withArgs("run", "main.go"), withStream()); err != nil {
		return err
	}
	return nil
}

// Converts and keeps watching the images directory for changes.
func (Run) Watch() error {
	fmt.Println("Run photomesh in watch mode...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
