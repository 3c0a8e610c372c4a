package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
	"github.com/alaire/inventario-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
	for _, p := range products {
		cp := p
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		r.products[cp.ID] = &cp
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[cp.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByNombreForUpdate(_ context.Context, nombre string) (*entity.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Nombre, nombre) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]repository.ProductRow, error) {
	rows := make([]repository.ProductRow, 0, len(r.products))
	for _, p := range r.products {
		rows = append(rows, repository.ProductRow{Product: *p})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Nombre < rows[j].Nombre })
	return rows, nil
}

func (r *fakeProductRepo) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out[id] = p.Nombre
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[cp.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, p *entity.Product) error {
	return r.Update(context.Background(), p)
}

func (r *fakeProductRepo) ResetCounters(_ context.Context) error {
	for _, p := range r.products {
		p.Ingreso = 0
		p.Salida = 0
	}
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeRoleRepo struct {
	roles  map[int64]*entity.Role
	counts map[int64]int64
	nextID int64
}

func newFakeRoleRepo(roles ...entity.Role) *fakeRoleRepo {
	r := &fakeRoleRepo{roles: make(map[int64]*entity.Role), counts: make(map[int64]int64), nextID: 1}
	for _, role := range roles {
		cp := role
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		r.roles[cp.ID] = &cp
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
	}
	return r
}

func (r *fakeRoleRepo) Create(_ context.Context, role *entity.Role) error {
	role.ID = r.nextID
	r.nextID++
	cp := *role
	r.roles[cp.ID] = &cp
	return nil
}

func (r *fakeRoleRepo) GetByID(_ context.Context, id int64) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *role
	return &cp, nil
}

func (r *fakeRoleRepo) List(_ context.Context) ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(r.roles))
	for _, role := range r.roles {
		cp := *role
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *fakeRoleRepo) Update(_ context.Context, role *entity.Role) error {
	if _, ok := r.roles[role.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *role
	r.roles[cp.ID] = &cp
	return nil
}

func (r *fakeRoleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.roles, id)
	return nil
}

func (r *fakeRoleRepo) CountUsers(_ context.Context, roleID int64) (int64, error) {
	return r.counts[roleID], nil
}

func (r *fakeRoleRepo) UserCounts(_ context.Context) (map[int64]int64, error) {
	out := make(map[int64]int64, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		cp := u
		r.users[cp.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[cp.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) FindEmailByFullName(_ context.Context, fullName string) (string, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.FullName(), strings.TrimSpace(fullName)) {
			return u.Email, nil
		}
	}
	return "", nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.users[cp.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListWithRole(_ context.Context) ([]repository.UserWithRole, error) {
	var out []repository.UserWithRole
	for _, u := range r.users {
		out = append(out, repository.UserWithRole{
			ID: u.ID, Nombre: u.Nombre, Apellido: u.Apellido, Email: u.Email,
		})
	}
	return out, nil
}
