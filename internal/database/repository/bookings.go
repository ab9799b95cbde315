package repository

import (
	"context"
	"database/sql"
	"time"
)

// BookingRepo handles bookings.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, service_id, service_title, price, date, time, name, phone,
 wilaya, address, status, tracking_status, payment_method, payment_status, created_at, updated_at`

// Upsert inserts the booking or replaces every mutable field of the row with
// the same id. updated_at is stamped on both paths, which is what moves the
// record to the front of List.
func (r *BookingRepo) Upsert(ctx context.Context, b Booking) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO bookings(
	 id, service_id, service_title, price, date, time, name, phone,
	 wilaya, address, status, tracking_status, payment_method, payment_status, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 service_id = excluded.service_id,
	 service_title = excluded.service_title,
	 price = excluded.price,
	 date = excluded.date,
	 time = excluded.time,
	 name = excluded.name,
	 phone = excluded.phone,
	 wilaya = excluded.wilaya,
	 address = excluded.address,
	 status = excluded.status,
	 tracking_status = excluded.tracking_status,
	 payment_method = excluded.payment_method,
	 payment_status = excluded.payment_status,
	 updated_at = excluded.updated_at;
	`,
		b.ID, b.ServiceID, b.ServiceTitle, b.Price, b.Date, b.Time, b.Name, b.Phone,
		b.Wilaya, b.Address, b.Status, b.TrackingStatus, b.PaymentMethod, b.PaymentStatus,
		b.CreatedAt, now)
	return err
}

// List returns all bookings, most recently created-or-updated first.
func (r *BookingRepo) List(ctx context.Context) ([]Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Get returns the booking with the given id, or nil when absent.
func (r *BookingRepo) Get(ctx context.Context, id string) (*Booking, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatus transitions the lifecycle status of one booking. Cancellation
// goes through here: a booking is never deleted.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, status BookingStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	return err
}

// UpdateTrackingStatus advances the fulfilment-progress tag of one booking.
func (r *BookingRepo) UpdateTrackingStatus(ctx context.Context, id string, ts TrackingStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET tracking_status = ?, updated_at = ? WHERE id = ?`,
		ts, time.Now().UTC(), id)
	return err
}

// scanBooking handles both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row scanner) (Booking, error) {
	var b Booking
	if err := row.Scan(&b.ID, &b.ServiceID, &b.ServiceTitle, &b.Price, &b.Date, &b.Time,
		&b.Name, &b.Phone, &b.Wilaya, &b.Address, &b.Status, &b.TrackingStatus,
		&b.PaymentMethod, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return Booking{}, err
	}
	return b, nil
}
