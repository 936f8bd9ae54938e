package service

import (
	"net/http"
	"testing"

	"agrodog/cmd/internal/contract"
	"agrodog/cmd/internal/utils/apierror"
)

func TestCultureRegister(t *testing.T) {
	env := newTestEnv(t)
	p := env.mustProducer(t, "Maria Souza", "52998224725", "maria@example.com")
	farm := env.mustFarm(t, p.ID, "Fazenda Boa Vista", "SP", "500")
	other := env.mustFarm(t, p.ID, "Sítio das Pedras", "MG", "500")

	culture, apierr := env.cultures.Register(ctx, &contract.CreateCultureRequest{
		Name:        "Soja",
		Description: ptr("Soja transgênica"),
		FarmID:      farm.ID,
	})
	wantOK(t, apierr)
	if culture.ID == "" || culture.FarmID != farm.ID || *culture.Description != "Soja transgênica" {
		t.Errorf("culture = %+v", culture)
	}

	_, apierr = env.cultures.Register(ctx, &contract.CreateCultureRequest{Name: " Soja ", FarmID: farm.ID})
	if apierr != apierror.CultureExistsError {
		t.Errorf("duplicate error = %+v, want culture exists", apierr)
	}

	_, apierr = env.cultures.Register(ctx, &contract.CreateCultureRequest{Name: "Soja", FarmID: other.ID})
	wantOK(t, apierr)

	_, apierr = env.cultures.Register(ctx, &contract.CreateCultureRequest{Name: "Soja", FarmID: "3f1c5a52-8a0e-4a55-9d43-5b1d3c1a9e11"})
	wantStatus(t, apierr, http.StatusNotFound)

	_, apierr = env.cultures.Register(ctx, &contract.CreateCultureRequest{Name: "So", FarmID: farm.ID})
	wantStatus(t, apierr, http.StatusBadRequest)
}
