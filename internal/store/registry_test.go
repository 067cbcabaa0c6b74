package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

func profile(name string) *model.CenterProfile {
	return &model.CenterProfile{
		ID:   name + "-id",
		Name: name,
		Type: "Urbano",
	}
}

func TestPutYActive(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Active(); ok {
		t.Fatal("un registro vacío no tiene centro activo")
	}

	r.Put(profile("Centro A"))
	active, ok := r.Active()
	if !ok || active.Name != "Centro A" {
		t.Fatal("la subida debe dejar el centro como activo")
	}

	// Una nueva subida se convierte en el centro activo
	r.Put(profile("Centro B"))
	active, _ = r.Active()
	if active.Name != "Centro B" {
		t.Errorf("activo = %q, se esperaba Centro B", active.Name)
	}
	if r.Count() != 2 {
		t.Errorf("centros = %d, se esperaban 2", r.Count())
	}
}

func TestPutReemplazaEntrada(t *testing.T) {
	r := NewRegistry()

	first := profile("Centro A")
	r.Put(first)

	// Re-subida con el mismo nombre: la entrada se sustituye entera
	second := profile("Centro A")
	second.ID = "otro-id"
	r.Put(second)

	if r.Count() != 1 {
		t.Fatalf("centros = %d, re-subir no duplica", r.Count())
	}
	got, err := r.Get("Centro A")
	if err != nil {
		t.Fatalf("error recuperando: %v", err)
	}
	if got.ID != "otro-id" {
		t.Errorf("id = %q, la entrada antigua debe sustituirse", got.ID)
	}
}

func TestGetNoExiste(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nadie"); !errors.Is(err, ErrCenterNotFound) {
		t.Errorf("se esperaba ErrCenterNotFound, llegó %v", err)
	}
}

func TestSetActive(t *testing.T) {
	r := NewRegistry()
	r.Put(profile("Centro A"))
	r.Put(profile("Centro B"))

	if err := r.SetActive("Centro A"); err != nil {
		t.Fatalf("error cambiando activo: %v", err)
	}
	active, _ := r.Active()
	if active.Name != "Centro A" {
		t.Errorf("activo = %q, se esperaba Centro A", active.Name)
	}

	if err := r.SetActive("nadie"); !errors.Is(err, ErrCenterNotFound) {
		t.Errorf("se esperaba ErrCenterNotFound, llegó %v", err)
	}
}

func TestListOrdenDeInsercion(t *testing.T) {
	r := NewRegistry()
	r.Put(profile("C"))
	r.Put(profile("A"))
	r.Put(profile("B"))
	r.Put(profile("A")) // re-subida: no cambia el orden

	list := r.List()
	want := []string{"C", "A", "B"}
	if len(list) != len(want) {
		t.Fatalf("centros = %d, se esperaban %d", len(list), len(want))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("posición %d = %q, se esperaba %q", i, list[i].Name, name)
		}
	}
}

func TestRemove(t *testing.T) {
	r := NewRegistry()
	r.Put(profile("Centro A"))
	r.Put(profile("Centro B"))

	if err := r.Remove("Centro B"); err != nil {
		t.Fatalf("error eliminando: %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("centros = %d, se esperaba 1", r.Count())
	}

	// Eliminar el activo deja el puntero vacío
	if _, ok := r.Active(); ok {
		t.Error("eliminar el centro activo debe dejar la sesión sin activo")
	}

	if err := r.Remove("nadie"); !errors.Is(err, ErrCenterNotFound) {
		t.Errorf("se esperaba ErrCenterNotFound, llegó %v", err)
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.Put(profile("Centro A"))
	r.Clear()

	if r.Count() != 0 {
		t.Error("el registro debe quedar vacío")
	}
	if _, ok := r.Active(); ok {
		t.Error("el puntero activo debe limpiarse")
	}
}

func TestAccesoConcurrente(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Put(profile(fmt.Sprintf("Centro %d", n)))
		}(i)
		go func() {
			defer wg.Done()
			r.List()
			r.Count()
			r.Active()
		}()
	}
	wg.Wait()

	if r.Count() != 20 {
		t.Errorf("centros = %d, se esperaban 20", r.Count())
	}
}
