package repository

import (
	"testing"

	"agrodog/cmd/internal/domain/database"
	"agrodog/cmd/internal/domain/database/databasetest"
	"agrodog/cmd/internal/domain/entity"
)

func TestAddressIsOnePerFarm(t *testing.T) {
	db := databasetest.New(t)
	repo := NewAddressRepository(db)

	p := seedProducer(t, db, "Maria Souza", "52998224725", "maria@example.com")
	f := seedFarm(t, db, p, "Fazenda Boa Vista", "SP")

	err := repo.Create(ctx, &entity.Address{
		FarmID: f.ID, Street: "Rua", Number: "1", Neighborhood: "Centro",
		City: "Campinas", State: "SP", ZipCode: "13000000",
	})
	if !database.IsUniqueViolation(err) {
		t.Errorf("err = %v, want unique violation", err)
	}
}
