// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/churchops/appcontext-service/internal/types"
	"github.com/churchops/appcontext-service/pkg/tenant"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage tenant users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List users for a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var users []*types.TenantUser
		err := getClient().do(context.Background(), "GET",
			"/api/v0/tenants/"+args[0]+"/users", nil, &users)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.UserID, u.Email, u.Role)
		}
		w.Flush()
		return nil
	},
}

var inviteUserCmd = &cobra.Command{
	Use:   "invite [tenant-id] [email] [role]",
	Short: "Invite a user to a tenant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp tenant.InviteResponse
		err := getClient().do(context.Background(), "POST",
			"/api/v0/tenants/"+args[0]+"/invite",
			map[string]string{"email": args[1], "role": args[2]}, &resp)
		if err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		fmt.Printf("User invited: %s\n", args[1])
		fmt.Printf("Status: %s\n", resp.Status)
		if resp.Link != "" {
			fmt.Printf("Link: %s\n", resp.Link)
		}
		if resp.Code != "" {
			fmt.Printf("Code: %s\n", resp.Code)
		}
		return nil
	},
}

var provisionUserCmd = &cobra.Command{
	Use:   "provision [tenant-id] [email] [role]",
	Short: "Provision a user to a tenant directly",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(context.Background(), "POST",
			"/api/v0/tenants/"+args[0]+"/users",
			map[string]string{"email": args[1], "role": args[2]}, nil)
		if err != nil {
			return fmt.Errorf("failed to provision user: %w", err)
		}

		fmt.Printf("User provisioned: %s (Role: %s)\n", args[1], args[2])
		return nil
	},
}

var updateUserCmd = &cobra.Command{
	Use:   "update [tenant-id] [user-id] [role]",
	Short: "Update user role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var user types.TenantUser
		err := getClient().do(context.Background(), "PATCH",
			"/api/v0/tenants/"+args[0]+"/users/"+args[1],
			map[string]string{"role": args[2]}, &user)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("User updated: %s\n", user.Email)
		fmt.Printf("New Role: %s\n", user.Role)
		return nil
	},
}

var removeUserCmd = &cobra.Command{
	Use:   "remove [tenant-id] [user-id]",
	Short: "Remove a user from a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(context.Background(), "DELETE",
			"/api/v0/tenants/"+args[0]+"/users/"+args[1], nil, nil)
		if err != nil {
			return fmt.Errorf("failed to remove user: %w", err)
		}

		fmt.Printf("User removed: %s\n", args[1])
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(inviteUserCmd)
	usersCmd.AddCommand(provisionUserCmd)
	usersCmd.AddCommand(updateUserCmd)
	usersCmd.AddCommand(removeUserCmd)
}
