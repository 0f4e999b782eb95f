package main

import (
	"fmt"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <tree>",
	Short: "Check a tree for consistency",
	Long: `Builds the tree and reports dangling pointers and invalid strategies.
With --actor, every action is also checked against the actor script.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		actorPath, _ := cmd.Flags().GetString("actor")
		if err := cli.Validate(args[0], actorPath); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Tree is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("actor", "a", "", "Actor script to check capabilities against")
}
