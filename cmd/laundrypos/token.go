package main

import (
	"fmt"

	"github.com/spf13/cobra"

	. "github.com/DrGermanius/LaundryPOS/internal"
	"github.com/DrGermanius/LaundryPOS/internal/model"
)

func tokenCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "token <operator-id>",
		Short: "Issue an operator token for the HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := NewSessions(cfg.JWTSecret).Issue(model.Operator{ID: args[0], Role: role})
			if err != nil {
				return err
			}
			fmt.Println(t)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", model.RoleStaff, "operator role (Admin or Staff)")
	return cmd
}
