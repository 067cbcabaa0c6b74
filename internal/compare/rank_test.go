package compare

import (
	"testing"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

func testGroups() []model.GroupAggregate {
	return []model.GroupAggregate{
		{Key: "Madrid", Revenue: 50000, FootTraffic: 2000},
		{Key: "Sur", Revenue: 20000, FootTraffic: 3000},
		{Key: "Norte", Revenue: 35000, FootTraffic: 2000},
	}
}

func TestRankGroupsAscendente(t *testing.T) {
	ranked := RankGroups(testGroups(), model.ColIngresosTotales, Ascending)

	want := []string{"Sur", "Norte", "Madrid"}
	for i, key := range want {
		if ranked[i].Key != key {
			t.Errorf("posición %d = %q, se esperaba %q", i, ranked[i].Key, key)
		}
	}
}

func TestRankGroupsDescendente(t *testing.T) {
	ranked := RankGroups(testGroups(), model.ColIngresosTotales, Descending)

	want := []string{"Madrid", "Norte", "Sur"}
	for i, key := range want {
		if ranked[i].Key != key {
			t.Errorf("posición %d = %q, se esperaba %q", i, ranked[i].Key, key)
		}
	}
}

func TestRankGroupsEmpatesEstables(t *testing.T) {
	// Madrid y Norte empatan en afluencia: conservan su orden original
	ranked := RankGroups(testGroups(), model.ColTraficoPeatonal, Ascending)

	want := []string{"Madrid", "Norte", "Sur"}
	for i, key := range want {
		if ranked[i].Key != key {
			t.Errorf("posición %d = %q, se esperaba %q", i, ranked[i].Key, key)
		}
	}
}

func TestRankGroupsNoMutaLaEntrada(t *testing.T) {
	groups := testGroups()
	RankGroups(groups, model.ColIngresosTotales, Descending)

	if groups[0].Key != "Madrid" || groups[1].Key != "Sur" {
		t.Error("la tabla de entrada no debe reordenarse")
	}
}

func TestParseOrder(t *testing.T) {
	if ParseOrder("desc") != Descending {
		t.Error("desc no reconocido")
	}
	if ParseOrder("") != Ascending || ParseOrder("otro") != Ascending {
		t.Error("el valor por defecto es ascendente")
	}
}

func TestTopGroup(t *testing.T) {
	best, delta, ok := TopGroup(testGroups(), model.ColIngresosTotales)
	if !ok {
		t.Fatal("debe haber grupo destacado")
	}
	if best.Key != "Madrid" {
		t.Errorf("grupo destacado = %q, se esperaba Madrid", best.Key)
	}

	// Media de ingresos: 35000; Madrid: 50000 -> +42.857%
	want := (50000.0/35000.0 - 1) * 100
	if !approx(delta, want) {
		t.Errorf("delta = %v, se esperaba %v", delta, want)
	}
}

func TestTopGroupVacio(t *testing.T) {
	if _, _, ok := TopGroup(nil, model.ColIngresosTotales); ok {
		t.Error("sin grupos no hay destacado")
	}
}
