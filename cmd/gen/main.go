package main

import (
	"tally/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LoyaltyProgramModel{},
		model.MembershipModel{},
		model.EarnEventModel{},
		model.RewardRedemptionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
