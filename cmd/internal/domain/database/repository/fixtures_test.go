package repository

import (
	"context"
	"testing"

	"agrodog/cmd/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ctx = context.Background()

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedProducer(t *testing.T, db *gorm.DB, name, cpf, email string) *entity.Producer {
	t.Helper()
	p := &entity.Producer{Name: name, CPF: cpf, Email: email, Phone: "11987654321", Status: entity.StatusActive}
	if err := NewProducerRepository(db).Create(ctx, p); err != nil {
		t.Fatalf("seed producer: %v", err)
	}
	return p
}

func seedFarm(t *testing.T, db *gorm.DB, producer *entity.Producer, name, state string) *entity.Farm {
	t.Helper()
	f := &entity.Farm{
		ProducerID:     producer.ID,
		Name:           name,
		TotalArea:      dec("1000"),
		ArableArea:     dec("800"),
		VegetationArea: dec("200"),
		Status:         entity.StatusActive,
	}
	if err := NewFarmRepository(db).Create(ctx, f); err != nil {
		t.Fatalf("seed farm: %v", err)
	}

	a := &entity.Address{
		FarmID:       f.ID,
		Street:       "Estrada Municipal",
		Number:       "100",
		Neighborhood: "Zona Rural",
		City:         "Ribeirão Preto",
		State:        state,
		ZipCode:      "14000000",
	}
	if err := NewAddressRepository(db).Create(ctx, a); err != nil {
		t.Fatalf("seed address: %v", err)
	}
	f.Address = a
	return f
}

func seedCulture(t *testing.T, db *gorm.DB, farm *entity.Farm, name string) *entity.Culture {
	t.Helper()
	c := &entity.Culture{FarmID: farm.ID, Name: name}
	if err := NewCultureRepository(db).Create(ctx, c); err != nil {
		t.Fatalf("seed culture: %v", err)
	}
	return c
}

// seedHarvest creates a harvest; an empty actual leaves the production unknown.
func seedHarvest(t *testing.T, db *gorm.DB, farm *entity.Farm, culture *entity.Culture, year int, area, actual string) *entity.Harvest {
	t.Helper()
	h := &entity.Harvest{
		FarmID:             farm.ID,
		CultureID:          culture.ID,
		Year:               year,
		Season:             entity.SeasonSummer,
		Area:               dec(area),
		ExpectedProduction: dec("100"),
	}
	if actual != "" {
		h.ActualProduction = decimal.NewNullDecimal(dec(actual))
	}
	if err := NewHarvestRepository(db).Create(ctx, h); err != nil {
		t.Fatalf("seed harvest: %v", err)
	}
	return h
}
