package cli

import (
	"context"
	"fmt"
	"strconv"
)

type RosterCmd struct {
	AgeGroup string `help:"Age group id or name." required:"" name:"age-group"`
}

func (c *RosterCmd) Run(ctx *Context) error {
	svc, err := ctx.services()
	if err != nil {
		return err
	}

	bg := context.Background()
	cat, err := svc.Catalog.Catalog(bg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	ageGroup, ok := cat.FindAgeGroup(c.AgeGroup)
	if !ok {
		return fmt.Errorf("unknown age group: %s", c.AgeGroup)
	}

	groups, err := svc.Roster.LatestRoster(bg, ageGroup.ID)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	if len(groups) == 0 {
		fmt.Fprintf(ctx.Out, "No classes found for %s\n", ageGroup.Name)
		return nil
	}

	fmt.Fprintln(ctx.Out, titleStyle.Render(fmt.Sprintf("%s, %s", ageGroup.Name, groups[0].Class.AcademicYear)))

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		if g.Failed() {
			rows = append(rows, []string{g.Class.Name, degradedLabel, g.Err})
			continue
		}
		rows = append(rows, []string{g.Class.Name, strconv.Itoa(g.TotalStudents), strconv.Itoa(g.StudentsWithAllergy)})
	}

	fmt.Fprintln(ctx.Out, renderTable([]string{"Class", "Students", "Allergies"}, rows))
	return nil
}
