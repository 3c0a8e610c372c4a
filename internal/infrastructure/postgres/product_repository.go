package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alaire/inventario-api/internal/domain"
	"github.com/alaire/inventario-api/internal/domain/entity"
	"github.com/alaire/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, bodega, cocina, stock_min, stock_max, ingreso, salida, updated_by, updated_at`

// Create persiste un nuevo producto. Los contadores nacen en cero.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (nombre, bodega, cocina, stock_min, stock_max, ingreso, salida, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Bodega, p.Cocina, p.StockMin, p.StockMax, p.Ingreso, p.Salida, p.UpdatedBy, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByNombreForUpdate busca por nombre case-insensitive y bloquea la fila.
// Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByNombreForUpdate(ctx context.Context, nombre string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(nombre) = LOWER($1) FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos con el nombre completo del último editor.
func (r *ProductRepo) List(ctx context.Context) ([]repository.ProductRow, error) {
	query := `
		SELECT p.id, p.nombre, p.bodega, p.cocina, p.stock_min, p.stock_max, p.ingreso, p.salida,
		       p.updated_by, p.updated_at,
		       COALESCE(TRIM(u.nombre || ' ' || u.apellido), '') AS responsable
		FROM products p
		LEFT JOIN users u ON u.id::text = p.updated_by
		ORDER BY p.nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductRow
	for rows.Next() {
		var row repository.ProductRow
		if err := rows.Scan(
			&row.ID, &row.Nombre, &row.Bodega, &row.Cocina, &row.StockMin, &row.StockMax,
			&row.Ingreso, &row.Salida, &row.UpdatedBy, &row.UpdatedAt, &row.Responsable,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// NamesByIDs resuelve los nombres de un conjunto de productos.
func (r *ProductRepo) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("names by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var nombre string
		if err := rows.Scan(&id, &nombre); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		out[id] = nombre
	}
	return out, rows.Err()
}

// Update reemplaza la ficha del producto. Los contadores se manejan vía movimientos.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET nombre = $2, bodega = $3, cocina = $4, stock_min = $5, stock_max = $6,
		    updated_by = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Bodega, p.Cocina, p.StockMin, p.StockMax, p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock persiste el resultado de un movimiento.
func (r *ProductRepo) UpdateStock(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET bodega = $2, cocina = $3, ingreso = $4, salida = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Bodega, p.Cocina, p.Ingreso, p.Salida, p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResetCounters pone en cero ingreso y salida de todos los productos (Revisado).
func (r *ProductRepo) ResetCounters(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET ingreso = 0, salida = 0`)
	if err != nil {
		return fmt.Errorf("reset counters: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Bodega, &p.Cocina, &p.StockMin, &p.StockMax,
		&p.Ingreso, &p.Salida, &p.UpdatedBy, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
