package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gym-records/gym"
	"github.com/goliatone/go-gym-records/records"
	"github.com/goliatone/go-gym-records/search"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var headers = map[search.Kind][]string{
	search.KindAdmins:   {"ID", "USERNAME", "ROLE", "CREATED"},
	search.KindTrainers: {"ID", "NAME", "SPECIALTY", "PHONE", "EMAIL", "HIRED"},
	search.KindUsers:    {"ID", "NAME", "MEMBERSHIP", "STATUS", "JOINED"},
}

func (a *app) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <admins|trainers|users> [query...]",
		Short: "List records of a kind, optionally filtered by a fuzzy query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := search.ParseKind(args[0])
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")
			rows := a.container.Service().FilterData(cmd.Context(), kind, query)
			return a.printRows(kind, rows)
		},
	}
}

func (a *app) printRows(kind search.Kind, rows []search.Row) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers[kind], "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r.Strings(), "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "%d %s\n", len(rows), kind)
	return err
}

func (a *app) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
	}
	cmd.AddCommand(a.newAddAdminCmd(), a.newAddTrainerCmd(), a.newAddMemberCmd())
	return cmd
}

func (a *app) newAddAdminCmd() *cobra.Command {
	admin := &gym.Admin{}
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Add an administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.container.Admins().Create(cmd.Context(), admin)
			if err != nil {
				return err
			}
			return a.printCreated(search.KindAdmins, created.ID)
		},
	}
	cmd.Flags().StringVar(&admin.Username, "username", "", "login name")
	cmd.Flags().StringVar(&admin.Role, "role", "", "role, e.g. owner or desk")
	return cmd
}

func (a *app) newAddTrainerCmd() *cobra.Command {
	trainer := &gym.Trainer{}
	var hired string
	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "Add a trainer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate("hire-date", hired)
			if err != nil {
				return err
			}
			trainer.HireDate = d
			created, err := a.container.Trainers().Create(cmd.Context(), trainer)
			if err != nil {
				return err
			}
			return a.printCreated(search.KindTrainers, created.ID)
		},
	}
	cmd.Flags().StringVar(&trainer.FirstName, "first", "", "first name")
	cmd.Flags().StringVar(&trainer.LastName, "last", "", "last name")
	cmd.Flags().StringVar(&trainer.Specialty, "specialty", "", "specialty")
	cmd.Flags().StringVar(&trainer.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&trainer.Email, "email", "", "email address")
	cmd.Flags().StringVar(&hired, "hire-date", "", "hire date as dd/mm/yyyy")
	return cmd
}

func (a *app) newAddMemberCmd() *cobra.Command {
	member := &gym.Member{}
	var joined string
	cmd := &cobra.Command{
		Use:     "member",
		Aliases: []string{"user"},
		Short:   "Add a member",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate("join-date", joined)
			if err != nil {
				return err
			}
			member.JoinDate = d
			created, err := a.container.Members().Create(cmd.Context(), member)
			if err != nil {
				return err
			}
			return a.printCreated(search.KindUsers, created.ID)
		},
	}
	cmd.Flags().StringVar(&member.FirstName, "first", "", "first name")
	cmd.Flags().StringVar(&member.LastName, "last", "", "last name")
	cmd.Flags().StringVar(&member.Membership, "membership", "", "membership plan")
	cmd.Flags().StringVar(&member.Status, "status", gym.StatusActive, "Active, Inactive or Suspended")
	cmd.Flags().StringVar(&joined, "join-date", "", "join date as dd/mm/yyyy")
	return cmd
}

func (a *app) printCreated(kind search.Kind, id uuid.UUID) error {
	_, err := fmt.Fprintf(a.out, "created %s %s\n", strings.TrimSuffix(kind.String(), "s"), id)
	return err
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <admins|trainers|users> <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := search.ParseKind(args[0])
			if err != nil {
				return err
			}
			id, err := uuid.Parse(args[1])
			if err != nil {
				return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid id").
					WithTextCode("INVALID_ID")
			}
			if err := a.container.DeleteRecord(cmd.Context(), kind, id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "deleted %s\n", id)
			return err
		},
	}
}

func parseDate(flag, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse(records.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid "+flag).
			WithTextCode("INVALID_DATE").
			WithMetadata(map[string]any{"value": value, "layout": "dd/mm/yyyy"})
	}
	return &t, nil
}
