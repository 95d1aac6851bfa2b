package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/employee"
	"github.com/bluespark/hospital-hr-backend-go/internal/domain/lifecycle"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
)

type lifecycleRepositoryImpl struct {
	db *database.DB
}

func NewLifecycleRepository(db *database.DB) lifecycle.LifecycleRepository {
	return &lifecycleRepositoryImpl{db: db}
}

// CreateVacation implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) CreateVacation(ctx context.Context, record lifecycle.VacationRecord) (lifecycle.VacationRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (id, employee_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, start_date, end_date, created_at
	`

	created, err := scanVacation(q.QueryRow(ctx, query, record.ID, record.EmployeeID, record.StartDate, record.EndDate))
	if err != nil {
		return lifecycle.VacationRecord{}, translateEventPgError(err)
	}
	return created, nil
}

// CreateTransfer implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) CreateTransfer(ctx context.Context, record lifecycle.TransferRecord) (lifecycle.TransferRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transfers (id, employee_id, transfer_date, destination)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, transfer_date, destination, created_at
	`

	created, err := scanTransfer(q.QueryRow(ctx, query, record.ID, record.EmployeeID, record.TransferDate, record.Destination))
	if err != nil {
		return lifecycle.TransferRecord{}, translateEventPgError(err)
	}
	return created, nil
}

// CreateRetirement implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) CreateRetirement(ctx context.Context, record lifecycle.RetirementRecord) (lifecycle.RetirementRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO retirements (id, employee_id, retirement_date, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, retirement_date, age, created_at
	`

	created, err := scanRetirement(q.QueryRow(ctx, query, record.ID, record.EmployeeID, record.RetirementDate, record.Age))
	if err != nil {
		return lifecycle.RetirementRecord{}, translateEventPgError(err)
	}
	return created, nil
}

// CreateSuspension implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) CreateSuspension(ctx context.Context, record lifecycle.SuspensionRecord) (lifecycle.SuspensionRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO suspensions (id, employee_id, suspension_date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, suspension_date, reason, created_at
	`

	created, err := scanSuspension(q.QueryRow(ctx, query, record.ID, record.EmployeeID, record.SuspensionDate, record.Reason))
	if err != nil {
		return lifecycle.SuspensionRecord{}, translateEventPgError(err)
	}
	return created, nil
}

// CreateDeath implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) CreateDeath(ctx context.Context, record lifecycle.DeathRecord) (lifecycle.DeathRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deaths (id, employee_id, date_of_death, age)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, date_of_death, age, created_at
	`

	created, err := scanDeath(q.QueryRow(ctx, query, record.ID, record.EmployeeID, record.DateOfDeath, record.Age))
	if err != nil {
		return lifecycle.DeathRecord{}, translateEventPgError(err)
	}
	return created, nil
}

// ListVacations implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) ListVacations(ctx context.Context, search string) ([]lifecycle.VacationEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.employee_id, v.start_date, v.end_date, v.created_at, e.first_name || ' ' || e.surname
		FROM vacations v
		JOIN employees e ON e.id = v.employee_id`
	var args []interface{}
	if search != "" {
		query += `
		WHERE v.start_date::text ILIKE $1`
		args = append(args, containsPattern(search))
	}
	query += `
		ORDER BY v.start_date DESC, v.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacations: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (lifecycle.VacationEntry, error) {
		var e lifecycle.VacationEntry
		err := row.Scan(&e.ID, &e.EmployeeID, &e.StartDate, &e.EndDate, &e.CreatedAt, &e.EmployeeName)
		return e, err
	})
}

// ListTransfers implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) ListTransfers(ctx context.Context) ([]lifecycle.TransferEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.transfer_date, t.destination, t.created_at, e.first_name || ' ' || e.surname
		FROM transfers t
		JOIN employees e ON e.id = t.employee_id
		ORDER BY t.transfer_date DESC, t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (lifecycle.TransferEntry, error) {
		var e lifecycle.TransferEntry
		err := row.Scan(&e.ID, &e.EmployeeID, &e.TransferDate, &e.Destination, &e.CreatedAt, &e.EmployeeName)
		return e, err
	})
}

// ListRetirements implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) ListRetirements(ctx context.Context) ([]lifecycle.RetirementEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.retirement_date, t.age, t.created_at, e.first_name || ' ' || e.surname
		FROM retirements t
		JOIN employees e ON e.id = t.employee_id
		ORDER BY t.retirement_date DESC, t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list retirements: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (lifecycle.RetirementEntry, error) {
		var e lifecycle.RetirementEntry
		err := row.Scan(&e.ID, &e.EmployeeID, &e.RetirementDate, &e.Age, &e.CreatedAt, &e.EmployeeName)
		return e, err
	})
}

// ListSuspensions implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) ListSuspensions(ctx context.Context) ([]lifecycle.SuspensionEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.suspension_date, t.reason, t.created_at, e.first_name || ' ' || e.surname
		FROM suspensions t
		JOIN employees e ON e.id = t.employee_id
		ORDER BY t.suspension_date DESC, t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suspensions: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (lifecycle.SuspensionEntry, error) {
		var e lifecycle.SuspensionEntry
		err := row.Scan(&e.ID, &e.EmployeeID, &e.SuspensionDate, &e.Reason, &e.CreatedAt, &e.EmployeeName)
		return e, err
	})
}

// ListDeaths implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) ListDeaths(ctx context.Context) ([]lifecycle.DeathEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.date_of_death, t.age, t.created_at, e.first_name || ' ' || e.surname
		FROM deaths t
		JOIN employees e ON e.id = t.employee_id
		ORDER BY t.date_of_death DESC, t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deaths: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (lifecycle.DeathEntry, error) {
		var e lifecycle.DeathEntry
		err := row.Scan(&e.ID, &e.EmployeeID, &e.DateOfDeath, &e.Age, &e.CreatedAt, &e.EmployeeName)
		return e, err
	})
}

// GetHistory implements lifecycle.LifecycleRepository.
func (r *lifecycleRepositoryImpl) GetHistory(ctx context.Context, employeeID string) (lifecycle.History, error) {
	q := GetQuerier(ctx, r.db)
	var h lifecycle.History

	g, gCtx := errgroup.WithContext(ctx)
	if _, inTx := ctx.Value(txContextKey{}).(pgx.Tx); inTx {
		// a transaction owns a single connection
		g.SetLimit(1)
	}

	g.Go(func() error {
		var err error
		h.Vacations, err = collectHistory(gCtx, q, `
			SELECT id, employee_id, start_date, end_date, created_at
			FROM vacations WHERE employee_id = $1
			ORDER BY start_date, created_at
		`, employeeID, scanVacation)
		if err != nil {
			return fmt.Errorf("failed to get vacation history: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		h.Transfers, err = collectHistory(gCtx, q, `
			SELECT id, employee_id, transfer_date, destination, created_at
			FROM transfers WHERE employee_id = $1
			ORDER BY transfer_date, created_at
		`, employeeID, scanTransfer)
		if err != nil {
			return fmt.Errorf("failed to get transfer history: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		h.Retirements, err = collectHistory(gCtx, q, `
			SELECT id, employee_id, retirement_date, age, created_at
			FROM retirements WHERE employee_id = $1
			ORDER BY retirement_date, created_at
		`, employeeID, scanRetirement)
		if err != nil {
			return fmt.Errorf("failed to get retirement history: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		h.Suspensions, err = collectHistory(gCtx, q, `
			SELECT id, employee_id, suspension_date, reason, created_at
			FROM suspensions WHERE employee_id = $1
			ORDER BY suspension_date, created_at
		`, employeeID, scanSuspension)
		if err != nil {
			return fmt.Errorf("failed to get suspension history: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		h.Deaths, err = collectHistory(gCtx, q, `
			SELECT id, employee_id, date_of_death, age, created_at
			FROM deaths WHERE employee_id = $1
			ORDER BY date_of_death, created_at
		`, employeeID, scanDeath)
		if err != nil {
			return fmt.Errorf("failed to get death history: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return lifecycle.History{}, err
	}
	return h, nil
}

func collectHistory[T any](ctx context.Context, q database.Querier, query, employeeID string, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

func scanVacation(row pgx.Row) (lifecycle.VacationRecord, error) {
	var v lifecycle.VacationRecord
	err := row.Scan(&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.CreatedAt)
	return v, err
}

func scanTransfer(row pgx.Row) (lifecycle.TransferRecord, error) {
	var t lifecycle.TransferRecord
	err := row.Scan(&t.ID, &t.EmployeeID, &t.TransferDate, &t.Destination, &t.CreatedAt)
	return t, err
}

func scanRetirement(row pgx.Row) (lifecycle.RetirementRecord, error) {
	var r lifecycle.RetirementRecord
	err := row.Scan(&r.ID, &r.EmployeeID, &r.RetirementDate, &r.Age, &r.CreatedAt)
	return r, err
}

func scanSuspension(row pgx.Row) (lifecycle.SuspensionRecord, error) {
	var s lifecycle.SuspensionRecord
	err := row.Scan(&s.ID, &s.EmployeeID, &s.SuspensionDate, &s.Reason, &s.CreatedAt)
	return s, err
}

func scanDeath(row pgx.Row) (lifecycle.DeathRecord, error) {
	var d lifecycle.DeathRecord
	err := row.Scan(&d.ID, &d.EmployeeID, &d.DateOfDeath, &d.Age, &d.CreatedAt)
	return d, err
}

// translateEventPgError maps a dangling employee_id to the not-found error. Everything else is
// returned as is and treated as a storage fault by the caller.
func translateEventPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return employee.ErrEmployeeNotFound
	}
	return err
}
