package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptfit/promptfit/policyfile"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the policy file format",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := policyfile.Schema()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
