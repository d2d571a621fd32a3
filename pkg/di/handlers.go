package di

import (
	"github.com/goliatone/go-gym-records/gym"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

func adminHandlers() repository.ModelHandlers[*gym.Admin] {
	return repository.ModelHandlers[*gym.Admin]{
		NewRecord: func() *gym.Admin { return &gym.Admin{} },
		GetID: func(a *gym.Admin) uuid.UUID {
			if a == nil {
				return uuid.Nil
			}
			return a.ID
		},
		SetID:         func(a *gym.Admin, id uuid.UUID) { a.ID = id },
		GetIdentifier: func() string { return "username" },
	}
}

func trainerHandlers() repository.ModelHandlers[*gym.Trainer] {
	return repository.ModelHandlers[*gym.Trainer]{
		NewRecord: func() *gym.Trainer { return &gym.Trainer{} },
		GetID: func(t *gym.Trainer) uuid.UUID {
			if t == nil {
				return uuid.Nil
			}
			return t.ID
		},
		SetID:         func(t *gym.Trainer, id uuid.UUID) { t.ID = id },
		GetIdentifier: func() string { return "email" },
	}
}

func memberHandlers() repository.ModelHandlers[*gym.Member] {
	return repository.ModelHandlers[*gym.Member]{
		NewRecord: func() *gym.Member { return &gym.Member{} },
		GetID: func(m *gym.Member) uuid.UUID {
			if m == nil {
				return uuid.Nil
			}
			return m.ID
		},
		SetID:         func(m *gym.Member, id uuid.UUID) { m.ID = id },
		GetIdentifier: func() string { return "id" },
	}
}
