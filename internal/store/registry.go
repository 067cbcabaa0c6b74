package store

import (
	"errors"
	"sync"

	"github.com/nathanserezit/centros-comerciales/internal/model"
)

// ErrCenterNotFound el centro pedido no está en el registro.
var ErrCenterNotFound = errors.New("centro no encontrado")

// Registry registro en memoria de centros de la sesión: mapa de nombre a
// perfil más el puntero al centro activo. Las entradas se sustituyen siempre
// como valor completo (nunca mutación parcial): la subida construye el perfil
// entero y lo reemplaza de una vez.
type Registry struct {
	centers map[string]*model.CenterProfile
	order   []string
	active  string
	mu      sync.RWMutex
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{
		centers: make(map[string]*model.CenterProfile),
	}
}

// Put sustituye la entrada del centro y lo marca como activo.
// Reemplazo atómico: entrada y puntero activo cambian bajo el mismo bloqueo.
func (r *Registry) Put(profile *model.CenterProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.centers[profile.Name]; !exists {
		r.order = append(r.order, profile.Name)
	}
	r.centers[profile.Name] = profile
	r.active = profile.Name
}

// Get devuelve el perfil de un centro por nombre.
func (r *Registry) Get(name string) (*model.CenterProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.centers[name]
	if !ok {
		return nil, ErrCenterNotFound
	}
	return profile, nil
}

// Active devuelve el centro activo, si lo hay.
func (r *Registry) Active() (*model.CenterProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.active == "" {
		return nil, false
	}
	profile, ok := r.centers[r.active]
	return profile, ok
}

// SetActive cambia el puntero de centro activo.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.centers[name]; !ok {
		return ErrCenterNotFound
	}
	r.active = name
	return nil
}

// List devuelve los perfiles en orden de primera inserción.
func (r *Registry) List() []*model.CenterProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.CenterProfile, 0, len(r.order))
	for _, name := range r.order {
		if profile, ok := r.centers[name]; ok {
			out = append(out, profile)
		}
	}
	return out
}

// Remove elimina un centro. Si era el activo, el puntero queda vacío.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.centers[name]; !ok {
		return ErrCenterNotFound
	}
	delete(r.centers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.active == name {
		r.active = ""
	}
	return nil
}

// Count número de centros registrados.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.centers)
}

// Clear vacía el registro y el puntero activo.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.centers = make(map[string]*model.CenterProfile)
	r.order = nil
	r.active = ""
}
