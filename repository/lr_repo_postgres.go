package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"sskcargo/models"
)

type PostgresLRRepo struct {
	DB *sql.DB
}

func NewPostgresLRRepo(db *sql.DB) *PostgresLRRepo {
	return &PostgresLRRepo{DB: db}
}

// Parties, items and charges are embedded value objects with no lifecycle of
// their own, so they live in JSONB columns on the receipt row.

const lrColumns = `
	id, owner_id, lr_no, lr_type, truck_no, date, from_place, to_place,
	invoice_no, invoice_amount, invoice_date, po_no, po_date,
	eway_bill_no, eway_bill_date, eway_ex_date,
	address_of_delivery, gst_paid_by,
	consignor, consignee, billing_to, billing_mode,
	items, weight, charged_weight, actual_weight_mt,
	freight, charges, rate, rate_on, remark,
	status, status_updated_at, pod_url,
	created_by, created_at, updated_at
`

func (r *PostgresLRRepo) Save(lr *models.LorryReceipt) error {
	if lr.CreatedAt.IsZero() {
		lr.CreatedAt = time.Now().UTC()
	}

	consignor, err := json.Marshal(lr.Consignor)
	if err != nil {
		return err
	}
	consignee, err := json.Marshal(lr.Consignee)
	if err != nil {
		return err
	}
	billingTo, err := json.Marshal(lr.BillingTo)
	if err != nil {
		return err
	}
	items, err := json.Marshal(lr.Items)
	if err != nil {
		return err
	}
	charges, err := json.Marshal(lr.Charges)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.DB.QueryRow(`
		INSERT INTO lorry_receipt(
			owner_id, lr_no, lr_type, truck_no, date, from_place, to_place,
			invoice_no, invoice_amount, invoice_date, po_no, po_date,
			eway_bill_no, eway_bill_date, eway_ex_date,
			address_of_delivery, gst_paid_by,
			consignor, consignee, billing_to, billing_mode,
			items, weight, charged_weight, actual_weight_mt,
			freight, charges, rate, rate_on, remark,
			status, status_updated_at, pod_url, created_by, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
		       $18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35)
		ON CONFLICT (owner_id, lr_no) DO UPDATE SET
			lr_type=EXCLUDED.lr_type,
			truck_no=EXCLUDED.truck_no,
			date=EXCLUDED.date,
			from_place=EXCLUDED.from_place,
			to_place=EXCLUDED.to_place,
			invoice_no=EXCLUDED.invoice_no,
			invoice_amount=EXCLUDED.invoice_amount,
			invoice_date=EXCLUDED.invoice_date,
			po_no=EXCLUDED.po_no,
			po_date=EXCLUDED.po_date,
			eway_bill_no=EXCLUDED.eway_bill_no,
			eway_bill_date=EXCLUDED.eway_bill_date,
			eway_ex_date=EXCLUDED.eway_ex_date,
			address_of_delivery=EXCLUDED.address_of_delivery,
			gst_paid_by=EXCLUDED.gst_paid_by,
			consignor=EXCLUDED.consignor,
			consignee=EXCLUDED.consignee,
			billing_to=EXCLUDED.billing_to,
			billing_mode=EXCLUDED.billing_mode,
			items=EXCLUDED.items,
			weight=EXCLUDED.weight,
			charged_weight=EXCLUDED.charged_weight,
			actual_weight_mt=EXCLUDED.actual_weight_mt,
			freight=EXCLUDED.freight,
			charges=EXCLUDED.charges,
			rate=EXCLUDED.rate,
			rate_on=EXCLUDED.rate_on,
			remark=EXCLUDED.remark,
			status=EXCLUDED.status,
			updated_at=$36
		RETURNING id
	`,
		lr.OwnerID, lr.LRNo, lr.LRType, lr.TruckNo, lr.Date, lr.FromPlace, lr.ToPlace,
		lr.InvoiceNo, lr.InvoiceAmount.Float64(), lr.InvoiceDate, lr.PONo, lr.PODate,
		lr.EwayBillNo, lr.EwayBillDate, lr.EwayExDate,
		lr.AddressOfDelivery, lr.GSTPaidBy,
		consignor, consignee, billingTo, lr.BillingMode,
		items, lr.Weight.Float64(), lr.ChargedWeight.Float64(), lr.ActualWeightMT.Float64(),
		lr.Freight.Float64(), charges, lr.Rate.Float64(), lr.RateOn, lr.Remark,
		lr.Status, lr.StatusUpdatedAt, lr.PODURL, lr.CreatedBy, lr.CreatedAt,
		now,
	).Scan(&lr.ID)
}

func (r *PostgresLRRepo) List(ownerID int64) ([]*models.LorryReceipt, error) {
	rows, err := r.DB.Query(`
		SELECT `+lrColumns+`
		FROM lorry_receipt
		WHERE owner_id=$1
		ORDER BY date DESC, created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.LorryReceipt
	for rows.Next() {
		lr, err := scanLR(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, lr)
	}
	return result, rows.Err()
}

func (r *PostgresLRRepo) GetByNo(ownerID int64, lrNo string) (*models.LorryReceipt, error) {
	row := r.DB.QueryRow(`
		SELECT `+lrColumns+`
		FROM lorry_receipt
		WHERE owner_id=$1 AND lr_no=$2
	`, ownerID, lrNo)

	lr, err := scanLR(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lr, nil
}

func (r *PostgresLRRepo) ListNos(ownerID int64) ([]string, error) {
	rows, err := r.DB.Query(`SELECT lr_no FROM lorry_receipt WHERE owner_id=$1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nos []string
	for rows.Next() {
		var no string
		if err := rows.Scan(&no); err != nil {
			return nil, err
		}
		nos = append(nos, no)
	}
	return nos, rows.Err()
}

func (r *PostgresLRRepo) Delete(ownerID int64, lrNo string) (string, error) {
	var podURL sql.NullString
	err := r.DB.QueryRow(`
		DELETE FROM lorry_receipt
		WHERE owner_id=$1 AND lr_no=$2
		RETURNING pod_url
	`, ownerID, lrNo).Scan(&podURL)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return podURL.String, nil
}

func (r *PostgresLRRepo) UpdateStatus(ownerID int64, lrNo, status string, at time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE lorry_receipt
		SET status=$1, status_updated_at=$2, updated_at=$2
		WHERE owner_id=$3 AND lr_no=$4
	`, status, at, ownerID, lrNo)
	return err
}

func (r *PostgresLRRepo) UpdatePOD(ownerID int64, lrNo string, url *string) error {
	_, err := r.DB.Exec(`
		UPDATE lorry_receipt
		SET pod_url=$1, updated_at=$2
		WHERE owner_id=$3 AND lr_no=$4
	`, url, time.Now().UTC(), ownerID, lrNo)
	return err
}

// scanLR reads one row regardless of whether it came from Query or QueryRow.
func scanLR(row interface{ Scan(...interface{}) error }) (*models.LorryReceipt, error) {
	var lr models.LorryReceipt
	var consignor, consignee, billingTo, items, charges []byte
	var invoiceAmount, weight, chargedWeight, actualWeightMT, freight, rate float64

	err := row.Scan(
		&lr.ID, &lr.OwnerID, &lr.LRNo, &lr.LRType, &lr.TruckNo, &lr.Date, &lr.FromPlace, &lr.ToPlace,
		&lr.InvoiceNo, &invoiceAmount, &lr.InvoiceDate, &lr.PONo, &lr.PODate,
		&lr.EwayBillNo, &lr.EwayBillDate, &lr.EwayExDate,
		&lr.AddressOfDelivery, &lr.GSTPaidBy,
		&consignor, &consignee, &billingTo, &lr.BillingMode,
		&items, &weight, &chargedWeight, &actualWeightMT,
		&freight, &charges, &rate, &lr.RateOn, &lr.Remark,
		&lr.Status, &lr.StatusUpdatedAt, &lr.PODURL,
		&lr.CreatedBy, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lr.InvoiceAmount = models.Amount(invoiceAmount)
	lr.Weight = models.Amount(weight)
	lr.ChargedWeight = models.Amount(chargedWeight)
	lr.ActualWeightMT = models.Amount(actualWeightMT)
	lr.Freight = models.Amount(freight)
	lr.Rate = models.Amount(rate)

	if err := json.Unmarshal(consignor, &lr.Consignor); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(consignee, &lr.Consignee); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(billingTo, &lr.BillingTo); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &lr.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(charges, &lr.Charges); err != nil {
		return nil, err
	}

	return &lr, nil
}
