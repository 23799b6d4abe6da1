package dto

// Valores de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage mantiene el OFFSET (page-1)*limit dentro de un entero de 32 bits.
	MaxPage = 10_000_000
)

// Response sobre uniforme de todas las respuestas HTTP.
type Response struct {
	Success    bool        `json:"success"`
	Code       string      `json:"code,omitempty"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination metadatos de página en respuestas de listados.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// PageRequest paginación pedida por el cliente (page es 1-based).
type PageRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

// Normalize aplica valores por defecto: page en [1, MaxPage], limit en [1, MaxLimit].
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset filas a saltar para la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SortDesc true salvo que se pida "asc" explícitamente.
func (p PageRequest) SortDesc() bool {
	return p.SortOrder != "asc"
}

// NewPagination calcula los metadatos a partir del total de registros.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// Page resultado paginado de un caso de uso.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// NewPage construye una página; Items nunca es nil para serializar [] en lugar de null.
func NewPage[T any](items []T, req PageRequest, total int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Pagination: NewPagination(req.Page, req.Limit, total)}
}
