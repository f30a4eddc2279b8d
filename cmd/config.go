package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/systematikdata/ordermix-cli/internal/config"
	"github.com/systematikdata/ordermix-cli/internal/mix"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Ordermix configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("id_mode: %s\n", c.IDMode)
		fmt.Printf("differentiate_by_quantity: %t\n", c.DifferentiateQuantity)
		fmt.Printf("payment_statuses: %s\n", strings.Join(c.PaymentStatuses, ","))
		fmt.Printf("output_format: %s\n", c.OutputFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := effectiveConfig()
		switch key {
		case "id_mode":
			mode, err := mix.ParseIDMode(val)
			if err != nil {
				return err
			}
			c.IDMode = string(mode)
		case "differentiate_by_quantity":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for differentiate_by_quantity: %v", val)
			}
			c.DifferentiateQuantity = b
		case "payment_statuses":
			var statuses []string
			for _, s := range strings.Split(val, ",") {
				if s = strings.TrimSpace(s); s != "" {
					statuses = append(statuses, strings.ToLower(s))
				}
			}
			c.PaymentStatuses = statuses
		case "output_format":
			switch strings.ToLower(val) {
			case "table", "csv":
				c.OutputFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid output_format: %s (use table or csv)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
