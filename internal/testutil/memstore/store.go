// Package memstore implementa los puertos de repositorio en memoria para tests.
// Replica la semántica de los adaptadores PostgreSQL: unicidad, filtros, orden y
// rollback de TxRunner.Run cuando la función devuelve error.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

// Store datos en memoria compartidos por todos los repositorios.
type Store struct {
	mu           sync.RWMutex
	users        map[string]entity.User
	categories   map[string]entity.Category
	suppliers    map[string]entity.Supplier
	products     map[string]entity.Product
	transactions map[string]entity.InventoryTransaction
}

// New crea un Store vacío.
func New() *Store {
	return &Store{
		users:        map[string]entity.User{},
		categories:   map[string]entity.Category{},
		suppliers:    map[string]entity.Supplier{},
		products:     map[string]entity.Product{},
		transactions: map[string]entity.InventoryTransaction{},
	}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Categories repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Suppliers repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Transactions repositorio de transacciones de inventario.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }

// TxRunner ejecuta fn y restaura el estado previo si devuelve error.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// TxRunner implementación en memoria de ports.TxRunner.
type TxRunner struct{ s *Store }

// Run toma una instantánea de productos y transacciones y la restaura ante error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.InventoryTransactionRepository,
) error) error {
	r.s.mu.RLock()
	products := make(map[string]entity.Product, len(r.s.products))
	for k, v := range r.s.products {
		products[k] = v
	}
	txs := make(map[string]entity.InventoryTransaction, len(r.s.transactions))
	for k, v := range r.s.transactions {
		txs[k] = v
	}
	r.s.mu.RUnlock()

	if err := fn(r.s.Products(), r.s.Transactions()); err != nil {
		r.s.mu.Lock()
		r.s.products = products
		r.s.transactions = txs
		r.s.mu.Unlock()
		return err
	}
	return nil
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func page[T any](items []T, opts repository.ListOptions) []T {
	if opts.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if opts.Limit > 0 && opts.Offset+opts.Limit < end {
		end = opts.Offset + opts.Limit
	}
	return items[opts.Offset:end]
}

// sortBy ordena con la clave indicada; less compara dos elementos para esa clave.
func sortBy[T any](items []T, desc bool, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// ── Users ─────────────────────────────────────────────────────────────────────

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out = append(out, &u)
		}
	}
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.ID != u.ID && other.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) List(_ context.Context, f repository.UserFilter, opts repository.ListOptions) ([]*entity.User, int, error) {
	r.s.mu.RLock()
	var all []*entity.User
	for _, u := range r.s.users {
		if f.Search != "" && !contains(u.Name, f.Search) && !contains(u.Email, f.Search) {
			continue
		}
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		u := u
		all = append(all, &u)
	}
	r.s.mu.RUnlock()
	sortBy(all, opts.SortDesc, func(a, b *entity.User) bool {
		switch opts.SortBy {
		case "name":
			return a.Name < b.Name
		case "email":
			return a.Email < b.Email
		case "role":
			return a.Role < b.Role
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return page(all, opts), len(all), nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// ── Categories ────────────────────────────────────────────────────────────────

// CategoryRepo implementa repository.CategoryRepository.
type CategoryRepo struct{ s *Store }

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.categories {
		if strings.EqualFold(other.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := r.s.categories[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.categories {
		if other.ID != c.ID && strings.EqualFold(other.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) SoftDelete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil
	}
	c.IsActive = false
	r.s.categories[id] = c
	return nil
}

func (r *CategoryRepo) List(_ context.Context, f repository.CategoryFilter, opts repository.ListOptions) ([]*entity.Category, int, error) {
	r.s.mu.RLock()
	var all []*entity.Category
	for _, c := range r.s.categories {
		if f.Search != "" && !contains(c.Name, f.Search) {
			continue
		}
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		if f.IsActive != nil && c.IsActive != *f.IsActive {
			continue
		}
		c := c
		all = append(all, &c)
	}
	r.s.mu.RUnlock()
	sortBy(all, opts.SortDesc, func(a, b *entity.Category) bool {
		switch opts.SortBy {
		case "name":
			return a.Name < b.Name
		case "type":
			return a.Type < b.Type
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return page(all, opts), len(all), nil
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// SupplierRepo implementa repository.SupplierRepository.
type SupplierRepo struct{ s *Store }

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

func (r *SupplierRepo) Create(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.suppliers {
		if other.Email == sup.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

func (r *SupplierRepo) GetByEmail(_ context.Context, email string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sup := range r.s.suppliers {
		if sup.Email == email {
			return &sup, nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Supplier
	for _, id := range ids {
		if sup, ok := r.s.suppliers[id]; ok {
			out = append(out, &sup)
		}
	}
	return out, nil
}

func (r *SupplierRepo) Update(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.suppliers {
		if other.ID != sup.ID && other.Email == sup.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.suppliers[sup.ID] = *sup
	return nil
}

func (r *SupplierRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.suppliers, id)
	return nil
}

func (r *SupplierRepo) List(_ context.Context, f repository.SupplierFilter, opts repository.ListOptions) ([]*entity.Supplier, int, error) {
	r.s.mu.RLock()
	var all []*entity.Supplier
	for _, sup := range r.s.suppliers {
		if f.Search != "" && !contains(sup.Name, f.Search) && !contains(sup.ContactPerson, f.Search) && !contains(sup.Email, f.Search) {
			continue
		}
		sup := sup
		all = append(all, &sup)
	}
	r.s.mu.RUnlock()
	sortBy(all, opts.SortDesc, func(a, b *entity.Supplier) bool {
		switch opts.SortBy {
		case "name":
			return a.Name < b.Name
		case "contactPerson":
			return a.ContactPerson < b.ContactPerson
		case "email":
			return a.Email < b.Email
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return page(all, opts), len(all), nil
}

func (r *SupplierRepo) Stats(_ context.Context, id string) (entity.SupplierStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var st entity.SupplierStats
	for _, p := range r.s.products {
		if p.SupplierID != id {
			continue
		}
		st.TotalItems++
		if p.Type == entity.TypeService {
			st.TotalServices++
			continue
		}
		st.TotalProducts++
		if p.IsLowStock() {
			st.LowStockProducts++
		}
		if p.IsOutOfStock() {
			st.OutOfStockProducts++
		}
	}
	return st, nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct{ s *Store }

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		r.s.products[p.ID] = *p
	}
	return nil
}

func (r *ProductRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
		r.s.products[id] = p
	}
	return nil
}

func (r *ProductRepo) SetSupplier(_ context.Context, productID, supplierID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[productID]; ok {
		p.SupplierID = supplierID
		r.s.products[productID] = p
	}
	return nil
}

func (r *ProductRepo) CountBySupplier(_ context.Context, supplierID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.products {
		if p.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter, opts repository.ListOptions) ([]*entity.Product, int, error) {
	r.s.mu.RLock()
	var all []*entity.Product
	for _, p := range r.s.products {
		if !matchProduct(p, f) {
			continue
		}
		p := p
		all = append(all, &p)
	}
	r.s.mu.RUnlock()
	sortBy(all, opts.SortDesc, func(a, b *entity.Product) bool {
		switch opts.SortBy {
		case "name":
			return a.Name < b.Name
		case "price":
			return a.Price.LessThan(b.Price)
		case "quantity":
			return a.Quantity < b.Quantity
		case "type":
			return a.Type < b.Type
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return page(all, opts), len(all), nil
}

func matchProduct(p entity.Product, f repository.ProductFilter) bool {
	if f.Search != "" && !contains(p.Name, f.Search) && !contains(p.Description, f.Search) {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.SupplierID != "" && p.SupplierID != f.SupplierID {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.LowStock && !p.IsLowStock() {
		return false
	}
	if f.OutOfStock && !p.IsOutOfStock() {
		return false
	}
	return true
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	for k, t := range r.s.transactions {
		if t.ProductID == id {
			delete(r.s.transactions, k)
		}
	}
	return nil
}

// ── Inventory transactions ────────────────────────────────────────────────────

// TransactionRepo implementa repository.InventoryTransactionRepository.
type TransactionRepo struct{ s *Store }

var _ repository.InventoryTransactionRepository = (*TransactionRepo)(nil)

func (r *TransactionRepo) Create(_ context.Context, t *entity.InventoryTransaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transactions[t.ID] = *t
	return nil
}

func (r *TransactionRepo) ListByProduct(_ context.Context, productID string, opts repository.ListOptions) ([]*entity.InventoryTransaction, int, error) {
	r.s.mu.RLock()
	var all []*entity.InventoryTransaction
	for _, t := range r.s.transactions {
		if t.ProductID == productID {
			t := t
			all = append(all, &t)
		}
	}
	r.s.mu.RUnlock()
	sortBy(all, opts.SortDesc, func(a, b *entity.InventoryTransaction) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return page(all, opts), len(all), nil
}
