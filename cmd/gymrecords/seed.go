package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-gym-records/gym"
	"github.com/spf13/cobra"
)

func (a *app) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.seed(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "seeded %d records\n", n)
			return err
		},
	}
}

func (a *app) seed(ctx context.Context) (int, error) {
	day := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	n := 0
	for _, admin := range []*gym.Admin{
		{Username: "root", Role: "owner"},
		{Username: "recepción", Role: "desk"},
	} {
		if _, err := a.container.Admins().Create(ctx, admin); err != nil {
			return n, err
		}
		n++
	}

	for _, trainer := range []*gym.Trainer{
		{FirstName: "Carlos", LastName: "Díaz", Specialty: "Yoga", Phone: "555-0101", Email: "carlos@gym.test", HireDate: day(2020, time.May, 5)},
		{FirstName: "Lucía", LastName: "Gómez", Specialty: "CrossFit", Phone: "555-0102", Email: "lucia@gym.test", HireDate: day(2021, time.March, 15)},
		{FirstName: "Andrés", LastName: "Núñez", Specialty: "Pilates"},
	} {
		if _, err := a.container.Trainers().Create(ctx, trainer); err != nil {
			return n, err
		}
		n++
	}

	for _, member := range []*gym.Member{
		{FirstName: "Ana", LastName: "García", Membership: "basic", Status: gym.StatusActive, JoinDate: day(2024, time.January, 1)},
		{FirstName: "Luis", LastName: "Pérez", Membership: "premium", Status: gym.StatusActive, JoinDate: day(2024, time.February, 2)},
		{FirstName: "Marta", LastName: "Ruiz", Membership: "basic", Status: gym.StatusInactive, JoinDate: day(2024, time.March, 3)},
	} {
		if _, err := a.container.Members().Create(ctx, member); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}
