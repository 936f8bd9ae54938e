package service

import (
	"errors"
	"net/http"
	"testing"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/utils/apierror"
)

func TestFarmRegister(t *testing.T) {
	env := newTestEnv(t)
	p := env.mustProducer(t, "Maria Souza", "52998224725", "maria@example.com")

	req := farmRequest(p.ID, "Fazenda Boa Vista", "sp", "100", "60", "40")
	req.Address.Complement = ptr(" Km 12 ")

	farm, apierr := env.farms.Register(ctx, req)
	wantOK(t, apierr)

	if farm.ID == "" || farm.ProducerID != p.ID || farm.Status != "ACTIVE" {
		t.Errorf("farm = %+v", farm)
	}
	if farm.Producer == nil || farm.Producer.Name != "Maria Souza" {
		t.Errorf("producer = %+v", farm.Producer)
	}
	if farm.Address == nil || farm.Address.State != "SP" || farm.Address.ZipCode != "14000-000" {
		t.Errorf("address = %+v", farm.Address)
	}
	if farm.Address.Complement == nil || *farm.Address.Complement != "Km 12" {
		t.Errorf("complement = %v", farm.Address.Complement)
	}

	var addresses []*entity.Address
	env.db.Find(&addresses)
	if len(addresses) != 1 || addresses[0].FarmID != farm.ID || addresses[0].ZipCode != "14000000" {
		t.Errorf("stored addresses = %+v", addresses)
	}
}

func TestFarmRegisterRejections(t *testing.T) {
	env := newTestEnv(t)
	p := env.mustProducer(t, "Maria Souza", "52998224725", "maria@example.com")

	tests := []struct {
		name   string
		mutate func(req *contract.CreateFarmRequest)
		status int
	}{
		{"areas exceed total", func(r *contract.CreateFarmRequest) { r.VegetationArea = decPtr("40.01") }, http.StatusBadRequest},
		{"negative area", func(r *contract.CreateFarmRequest) { r.ArableArea = decPtr("-1") }, http.StatusBadRequest},
		{"missing area", func(r *contract.CreateFarmRequest) { r.TotalArea = nil }, http.StatusBadRequest},
		{"missing address", func(r *contract.CreateFarmRequest) { r.Address = nil }, http.StatusBadRequest},
		{"invalid state", func(r *contract.CreateFarmRequest) { r.Address.State = "XX" }, http.StatusBadRequest},
		{"malformed postal code", func(r *contract.CreateFarmRequest) { r.Address.ZipCode = "1400-000" }, http.StatusBadRequest},
		{"unknown producer", func(r *contract.CreateFarmRequest) { r.ProducerID = "3f1c5a52-8a0e-4a55-9d43-5b1d3c1a9e11" }, http.StatusNotFound},
		{"unknown postal code", func(r *contract.CreateFarmRequest) { r.Address.ZipCode = "99999-999" }, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := farmRequest(p.ID, "Fazenda Boa Vista", "SP", "100", "60", "40")
			tt.mutate(req)

			_, apierr := env.farms.Register(ctx, req)
			wantStatus(t, apierr, tt.status)
		})
	}

	var count int64
	env.db.Model(&entity.Farm{}).Count(&count)
	if count != 0 {
		t.Errorf("farms = %d, want none persisted", count)
	}
}

func TestFarmRegisterPostalCodeErrors(t *testing.T) {
	env := newTestEnv(t)
	p := env.mustProducer(t, "Maria Souza", "52998224725", "maria@example.com")

	env.postalCodes.err = errors.New("connection refused")
	_, apierr := env.farms.Register(ctx, farmRequest(p.ID, "Fazenda Boa Vista", "SP", "100", "60", "40"))
	if apierr != apierror.InternalServerError {
		t.Errorf("error = %+v, want internal error", apierr)
	}

	env.postalCodes.err = nil
	_, apierr = env.farms.Register(ctx, farmRequest(p.ID, "Fazenda Boa Vista", "SP", "100", "60", "40"))
	wantOK(t, apierr)
}

func TestFarmRegisterSkipsLookupForUnknownProducer(t *testing.T) {
	env := newTestEnv(t)

	_, apierr := env.farms.Register(ctx, farmRequest("3f1c5a52-8a0e-4a55-9d43-5b1d3c1a9e11", "Fazenda", "SP", "100", "60", "40"))
	wantStatus(t, apierr, http.StatusNotFound)
	if env.postalCodes.calls != 0 {
		t.Errorf("postal code lookups = %d, want 0", env.postalCodes.calls)
	}
}

func TestFarmList(t *testing.T) {
	env := newTestEnv(t)
	maria := env.mustProducer(t, "Maria Souza", "52998224725", "maria@example.com")
	joao := env.mustProducer(t, "João Pereira", "11144477735", "joao@example.com")

	boaVista := env.mustFarm(t, maria.ID, "Fazenda Boa Vista", "SP", "500")
	env.mustFarm(t, maria.ID, "Sítio das Pedras", "MG", "300")
	env.mustFarm(t, joao.ID, "Fazenda Santa Rita", "SP", "800")

	soy := env.mustCulture(t, boaVista.ID, "Soja")
	env.mustHarvest(t, boaVista.ID, soy.ID, 2024, "10", nil)
	env.mustHarvest(t, boaVista.ID, soy.ID, 2025, "10", nil)

	page, apierr := env.farms.List(ctx, &contract.FarmListQuery{OrderBy: "arableArea", SortBy: "desc"})
	wantOK(t, apierr)
	if page.Meta.Total != 3 || page.Data[0].Name != "Fazenda Santa Rita" {
		t.Errorf("page = %+v", page)
	}

	page, apierr = env.farms.List(ctx, &contract.FarmListQuery{State: "sp", Search: "maria"})
	wantOK(t, apierr)
	if page.Meta.Total != 1 {
		t.Fatalf("total = %d, want 1", page.Meta.Total)
	}

	farm := page.Data[0]
	if farm.Producer.Name != "Maria Souza" || farm.Address.City != "Ribeirão Preto" {
		t.Errorf("farm = %+v", farm)
	}
	if len(farm.Cultures) != 1 || farm.Cultures[0] != "Soja" {
		t.Errorf("cultures = %v, want distinct [Soja]", farm.Cultures)
	}

	_, apierr = env.farms.List(ctx, &contract.FarmListQuery{OrderBy: "vegetationArea"})
	wantStatus(t, apierr, http.StatusBadRequest)

	_, apierr = env.farms.List(ctx, &contract.FarmListQuery{ProducerID: "not-a-uuid"})
	wantStatus(t, apierr, http.StatusBadRequest)
}

func TestFarmListTop(t *testing.T) {
	env := newTestEnv(t)
	maria := env.mustProducer(t, "Maria Souza", "52998224725", "maria@example.com")

	alpha := env.mustFarm(t, maria.ID, "Alpha", "SP", "500")
	beta := env.mustFarm(t, maria.ID, "Beta", "MG", "500")
	gamma := env.mustFarm(t, maria.ID, "Gamma", "SP", "500")
	delta := env.mustFarm(t, maria.ID, "Delta", "SP", "500")

	alphaSoy := env.mustCulture(t, alpha.ID, "Soja")
	alphaCorn := env.mustCulture(t, alpha.ID, "Milho")
	betaSoy := env.mustCulture(t, beta.ID, "Soja")
	gammaSoy := env.mustCulture(t, gamma.ID, "Soja")
	deltaSoy := env.mustCulture(t, delta.ID, "Soja")

	env.mustHarvest(t, alpha.ID, alphaSoy.ID, 2024, "10", decPtr("100"))
	env.mustHarvest(t, alpha.ID, alphaCorn.ID, 2025, "10", decPtr("80"))
	env.mustHarvest(t, beta.ID, betaSoy.ID, 2024, "10", decPtr("500"))
	env.mustHarvest(t, gamma.ID, gammaSoy.ID, 2024, "10", decPtr("120"))
	env.mustHarvest(t, delta.ID, deltaSoy.ID, 2024, "10", nil)

	top, apierr := env.farms.ListTop(ctx, &contract.TopProductionQuery{})
	wantOK(t, apierr)
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	if top[0].Name != "Beta" || top[1].Name != "Alpha" || top[2].Name != "Gamma" {
		t.Errorf("order = %s, %s, %s", top[0].Name, top[1].Name, top[2].Name)
	}
	if top[1].TotalProduction.String() != "180" || len(top[1].Cultures) != 2 {
		t.Errorf("alpha = %+v", top[1])
	}
	if top[0].ProducerName != "Maria Souza" || top[0].State != "MG" {
		t.Errorf("beta = %+v", top[0])
	}

	year := 2024
	top, apierr = env.farms.ListTop(ctx, &contract.TopProductionQuery{Year: &year, State: "SP", CultureName: "soja"})
	wantOK(t, apierr)
	if len(top) != 2 || top[0].Name != "Gamma" || top[1].TotalProduction.String() != "100" {
		t.Errorf("filtered = %+v", top)
	}
	if len(top[1].Cultures) != 1 || top[1].Cultures[0] != "Soja" {
		t.Errorf("alpha cultures = %v, want only the matching ones", top[1].Cultures)
	}

	old := 1800
	_, apierr = env.farms.ListTop(ctx, &contract.TopProductionQuery{Year: &old})
	wantStatus(t, apierr, http.StatusBadRequest)
}
