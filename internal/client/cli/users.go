package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/investprofile/internal/client/models"
)

func (a *App) Users(context.Context) error {
	a.printAccounts(a.auth.AllAccounts())
	return nil
}

func (a *App) Doctors(context.Context) error {
	a.printAccounts(a.auth.AllDoctors())
	return nil
}

func (a *App) Patients(context.Context) error {
	a.printAccounts(a.auth.Patients())
	return nil
}

func (a *App) printAccounts(list []models.Account) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No accounts.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, acc := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.Email, acc.Role)
	}
	_ = tw.Flush()
}
