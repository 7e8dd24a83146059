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
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenant types.Tenant
		err := getClient().do(context.Background(), "POST", "/api/v0/tenants",
			map[string]string{"name": args[0]}, &tenant)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s\n", tenant.ID)
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenants []*types.Tenant
		err := getClient().do(context.Background(), "GET", "/api/v0/tenants", nil, &tenants)
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tENABLED\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", t.ID, t.Name, t.Enabled, t.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
		return nil
	},
}

var updateTenantCmd = &cobra.Command{
	Use:   "update [tenant-id] [name]",
	Short: "Rename a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tenant types.Tenant
		err := getClient().do(context.Background(), "PATCH", "/api/v0/tenants/"+args[0],
			map[string]string{"name": args[1]}, &tenant)
		if err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", tenant.Name)
		return nil
	},
}

var activateTenantCmd = &cobra.Command{
	Use:   "activate [tenant-id]",
	Short: "Enable a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTenantEnabled(args[0], true)
	},
}

var deactivateTenantCmd = &cobra.Command{
	Use:   "deactivate [tenant-id]",
	Short: "Disable a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTenantEnabled(args[0], false)
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [tenant-id]",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := getClient().do(context.Background(), "DELETE", "/api/v0/tenants/"+args[0], nil, nil)
		if err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

func setTenantEnabled(tenantID string, enabled bool) error {
	var tenant types.Tenant
	err := getClient().do(context.Background(), "PATCH", "/api/v0/tenants/"+tenantID,
		map[string]bool{"enabled": enabled}, &tenant)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	fmt.Printf("Tenant %s enabled: %t\n", tenant.ID, tenant.Enabled)
	return nil
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(updateTenantCmd)
	tenantCmd.AddCommand(activateTenantCmd)
	tenantCmd.AddCommand(deactivateTenantCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
}
