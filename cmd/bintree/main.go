// Command bintree builds a binary tree and prints its traversals.
//
// Without a tree literal it uses the example tree
//
//	        8
//	       / \
//	      3   10
//	     / \    \
//	    1   6    14
//	       / \   /
//	      4   7 13
//	       \
//	        5
//
// A different tree can be given in level-order notation, e.g. --tree.literal='[1,null,2,3]'.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/dainf/bintree/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bintree:", err)
		os.Exit(1)
	}
}

// run executes the command. The returned error is reported by main.
func run(args []string, out io.Writer) error {
	config, err := loadConfiguration(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	log, err := logger.NewRootLoggerFromConfiguration(config)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return execute(newSettings(config), out, log)
}
