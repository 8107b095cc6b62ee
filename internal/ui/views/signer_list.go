package views

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/store"
)

func RenderSignerList(signers []*store.Signer) error {
	if len(signers) == 0 {
		pterm.Warning.Println("No signers enrolled")
		return nil
	}

	tableData := pterm.TableData{
		{"Name", "Address", "Role", "Enrolled"},
	}

	for _, s := range signers {
		role := s.Role
		switch s.Role {
		case constants.RoleAdmin:
			role = pterm.Magenta(s.Role)
		case constants.RoleTreasurer:
			role = pterm.Cyan(s.Role)
		case constants.RoleViewer:
			role = pterm.Gray(s.Role)
		}

		tableData = append(tableData, []string{
			s.Name,
			s.Address,
			role,
			time.Unix(s.EnrolledAt, 0).UTC().Format(constants.DateFormat),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d signers\n", len(signers))
	return nil
}
