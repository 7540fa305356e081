package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/tripsplice/internal/config"
	"github.com/mouse-blink/tripsplice/internal/domain"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

const editLongDescription = `Apply one edit to a generated page.

The section index counts <AirplaneSection> blocks for flights and
<HotelsSection> blocks for hotels, in document order starting at 0. Update
and add read the new element from a YAML or JSON record file.

Without --in-place or --output the edited page is written to stdout. Use "-"
as the file to read the page from stdin.

Examples:
  tripsplice edit Trip.jsx -c hotels --op remove --section 0 --element 1 -i
  tripsplice edit Trip.jsx -c flights --op add --section 1 --record flight.yaml -o Trip.new.jsx`

var editComponentFlag string
var editOpFlag string
var editSectionFlag int
var editElementFlag int
var editRecordFlag string
var editOutputFlag string
var editInPlaceFlag bool

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Update, remove or add one flight or hotel",
		Long:  editLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			edit, err := parseEditFlags()
			if err != nil {
				return err
			}

			return workflow.Edit(domain.EditArgs{
				Source:  m.Path(args[0]),
				Edit:    edit,
				Record:  m.Path(editRecordFlag),
				Output:  m.Path(editOutputFlag),
				InPlace: editInPlaceFlag,
				Strict:  cfg.Strict,
			})
		},
	}
	cmd.Flags().StringVarP(&editComponentFlag, "component", "c", "", "component to edit: flights or hotels")
	cmd.Flags().StringVar(&editOpFlag, "op", "", "operation: update, remove or add")
	cmd.Flags().IntVarP(&editSectionFlag, "section", "s", 0, "0-based index of the section block")
	cmd.Flags().IntVarP(&editElementFlag, "element", "e", 0, "0-based index of the element (update and remove)")
	cmd.Flags().StringVarP(&editRecordFlag, "record", "r", "", "YAML or JSON record file (update and add)")
	cmd.Flags().StringVarP(&editOutputFlag, "output", "o", "", "write the edited page to this path")
	cmd.Flags().BoolVarP(&editInPlaceFlag, "in-place", "i", false, "overwrite the source file")
	cmd.Flags().Bool(config.KeyStrict, false, "fail when the edit cannot be applied")

	_ = cmd.MarkFlagRequired("component")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

func parseEditFlags() (m.Edit, error) {
	component, ok := m.ComponentByName(editComponentFlag)
	if !ok {
		return m.Edit{}, fmt.Errorf("unknown component %q (must be flights or hotels)", editComponentFlag)
	}

	op, err := m.ParseOperation(editOpFlag)
	if err != nil {
		return m.Edit{}, err
	}

	if editSectionFlag < 0 || editElementFlag < 0 {
		return m.Edit{}, errors.New("section and element must not be negative")
	}

	return m.Edit{
		Op:           op,
		Component:    component,
		SectionIndex: editSectionFlag,
		ElementIndex: editElementFlag,
	}, nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
