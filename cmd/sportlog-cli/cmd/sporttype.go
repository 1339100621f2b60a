package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sportlog/internal/application"
	"sportlog/internal/application/commands"
	"sportlog/internal/domain"
)

var sportTypeCmd = &cobra.Command{
	Use:   "sporttype",
	Short: "Maintain sport types",
	Long: `Add, rename or delete sport types, their subtypes and equipment.

Exercises, notes and saved filters follow renames. Deleting a sport type,
subtype or equipment is refused while exercises still use it.

Examples:
  sportlog-cli sporttype add Cycling Road MTB --color "#1E88E5"
  sportlog-cli sporttype add-equipment 1 "Cube Stereo"
  sportlog-cli sporttype rename 1 Biking
  sportlog-cli sporttype rename-subtype 1 2 "Road bike"
  sportlog-cli sporttype delete-subtype 2 3`,
}

var (
	newSportTypeColor      string
	newSportTypeIcon       string
	newSportTypeNoDistance bool
)

var sportTypeAddCmd = &cobra.Command{
	Use:   "add <name> <subtype>...",
	Short: "Add a sport type with at least one subtype",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := domain.NewSportType(0, strings.TrimSpace(args[0]))
		st.Color = newSportTypeColor
		st.Icon = newSportTypeIcon
		st.RecordDistance = !newSportTypeNoDistance
		for _, name := range args[1:] {
			st.SubTypes.Set(&domain.SportSubType{ID: st.SubTypes.NextID(), Name: strings.TrimSpace(name)})
		}

		result, err := commands.NewSaveSportTypeCommand(GetBook(), logger, st).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if err := save(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var sportTypeAddSubTypeCmd = &cobra.Command{
	Use:   "add-subtype <sport-type-id> <name>",
	Short: "Add a subtype to a sport type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(args[1])

		return editSportType(cmd, id, func(st *domain.SportType) error {
			st.SubTypes.Set(&domain.SportSubType{ID: st.SubTypes.NextID(), Name: name})
			return nil
		})
	},
}

var sportTypeAddEquipmentCmd = &cobra.Command{
	Use:   "add-equipment <sport-type-id> <name>",
	Short: "Add equipment to a sport type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(args[1])

		return editSportType(cmd, id, func(st *domain.SportType) error {
			st.Equipment.Set(&domain.Equipment{ID: st.Equipment.NextID(), Name: name})
			return nil
		})
	},
}

var retireEquipment bool

var sportTypeRenameEquipmentCmd = &cobra.Command{
	Use:   "rename-equipment <sport-type-id> <equipment-id> <name>",
	Short: "Rename equipment",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, eqID, err := parseIDPair(args[0], args[1])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(args[2])

		return editSportType(cmd, id, func(st *domain.SportType) error {
			eq, ok := st.EquipmentByID(eqID)
			if !ok {
				return &application.NotFoundError{Kind: "equipment", ID: eqID}
			}
			eq.Name = name
			if cmd.Flags().Changed("retired") {
				eq.NotInUse = retireEquipment
			}
			return nil
		})
	},
}

var sportTypeDeleteEquipmentCmd = &cobra.Command{
	Use:   "delete-equipment <sport-type-id> <equipment-id>",
	Short: "Delete equipment no exercise uses",
	Long: `Delete equipment no exercise uses. Notes and saved filters referencing
it lose their equipment.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, eqID, err := parseIDPair(args[0], args[1])
		if err != nil {
			return err
		}

		return editSportType(cmd, id, func(st *domain.SportType) error {
			if !st.Equipment.Contains(eqID) {
				return &application.NotFoundError{Kind: "equipment", ID: eqID}
			}
			st.Equipment.RemoveByID(eqID)
			return nil
		})
	},
}

var sportTypeRenameCmd = &cobra.Command{
	Use:   "rename <sport-type-id> <name>",
	Short: "Rename a sport type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(args[1])

		return editSportType(cmd, id, func(st *domain.SportType) error {
			st.Name = name
			return nil
		})
	},
}

var sportTypeRenameSubTypeCmd = &cobra.Command{
	Use:   "rename-subtype <sport-type-id> <subtype-id> <name>",
	Short: "Rename a sport subtype",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, subID, err := parseIDPair(args[0], args[1])
		if err != nil {
			return err
		}
		name := strings.TrimSpace(args[2])

		return editSportType(cmd, id, func(st *domain.SportType) error {
			sub, ok := st.SubTypeByID(subID)
			if !ok {
				return &application.NotFoundError{Kind: "sport subtype", ID: subID}
			}
			sub.Name = name
			return nil
		})
	},
}

var sportTypeDeleteSubTypeCmd = &cobra.Command{
	Use:   "delete-subtype <sport-type-id> <subtype-id>",
	Short: "Delete an unused sport subtype",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, subID, err := parseIDPair(args[0], args[1])
		if err != nil {
			return err
		}

		return editSportType(cmd, id, func(st *domain.SportType) error {
			if !st.SubTypes.Contains(subID) {
				return &application.NotFoundError{Kind: "sport subtype", ID: subID}
			}
			st.SubTypes.RemoveByID(subID)
			return nil
		})
	},
}

var sportTypeDeleteCmd = &cobra.Command{
	Use:   "delete <sport-type-id>",
	Short: "Delete an unused sport type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		result, err := commands.NewDeleteSportTypeCommand(GetBook(), logger, id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if err := save(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		if n := result.Stats.NoteRefsCleared; n > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared the sport type of %d note(s)\n", n)
		}
		return nil
	},
}

func editSportType(cmd *cobra.Command, id int, edit func(st *domain.SportType) error) error {
	result, err := commands.EditSportType(cmd.Context(), GetBook(), logger, id, edit)
	if err != nil {
		return err
	}
	if err := save(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}

func parseIDPair(a, b string) (int, int, error) {
	first, err := parseID(a)
	if err != nil {
		return 0, 0, err
	}
	second, err := parseID(b)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

func init() {
	sportTypeAddCmd.Flags().StringVar(&newSportTypeColor, "color", "", "hex color, e.g. #1E88E5")
	sportTypeAddCmd.Flags().StringVar(&newSportTypeIcon, "icon", "", "icon name")
	sportTypeAddCmd.Flags().BoolVar(&newSportTypeNoDistance, "no-distance", false, "do not record distance (e.g. strength training)")
	sportTypeRenameEquipmentCmd.Flags().BoolVar(&retireEquipment, "retired", false, "mark the equipment as no longer in use")

	sportTypeCmd.AddCommand(sportTypeAddCmd)
	sportTypeCmd.AddCommand(sportTypeAddSubTypeCmd)
	sportTypeCmd.AddCommand(sportTypeAddEquipmentCmd)
	sportTypeCmd.AddCommand(sportTypeRenameEquipmentCmd)
	sportTypeCmd.AddCommand(sportTypeDeleteEquipmentCmd)
	sportTypeCmd.AddCommand(sportTypeRenameCmd)
	sportTypeCmd.AddCommand(sportTypeRenameSubTypeCmd)
	sportTypeCmd.AddCommand(sportTypeDeleteCmd)
	sportTypeCmd.AddCommand(sportTypeDeleteSubTypeCmd)
	rootCmd.AddCommand(sportTypeCmd)
}
