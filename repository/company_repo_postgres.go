package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"sskcargo/models"
)

type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

// Save upserts the single row per owner. Contact numbers and bank details go
// into JSONB columns.
func (r *PostgresCompanyRepo) Save(details *models.CompanyDetails) error {
	if details.CreatedAt.IsZero() {
		details.CreatedAt = time.Now().UTC()
	}

	contact, err := json.Marshal(details.Contact)
	if err != nil {
		return err
	}
	bank, err := json.Marshal(details.BankDetails)
	if err != nil {
		return err
	}

	return r.DB.QueryRow(`
		INSERT INTO company_details
			(owner_id, name, tagline, logo_url, signature_image_url, address,
			 email, web, contact, pan, gstn, bank_details, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (owner_id) DO UPDATE SET
			name=EXCLUDED.name,
			tagline=EXCLUDED.tagline,
			logo_url=EXCLUDED.logo_url,
			signature_image_url=EXCLUDED.signature_image_url,
			address=EXCLUDED.address,
			email=EXCLUDED.email,
			web=EXCLUDED.web,
			contact=EXCLUDED.contact,
			pan=EXCLUDED.pan,
			gstn=EXCLUDED.gstn,
			bank_details=EXCLUDED.bank_details
		RETURNING id
	`, details.OwnerID, details.Name, details.Tagline, details.LogoURL,
		details.SignatureImageURL, details.Address, details.Email, details.Web,
		contact, details.PAN, details.GSTN, bank, details.CreatedAt,
	).Scan(&details.ID)
}

func (r *PostgresCompanyRepo) Get(ownerID int64) (*models.CompanyDetails, error) {
	details := &models.CompanyDetails{}
	var contact, bank []byte

	err := r.DB.QueryRow(`
		SELECT id, owner_id, name, tagline, logo_url, signature_image_url,
		       address, email, web, contact, pan, gstn, bank_details, created_at
		FROM company_details
		WHERE owner_id=$1
	`, ownerID).Scan(
		&details.ID, &details.OwnerID, &details.Name, &details.Tagline,
		&details.LogoURL, &details.SignatureImageURL, &details.Address,
		&details.Email, &details.Web, &contact, &details.PAN, &details.GSTN,
		&bank, &details.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(contact) > 0 {
		if err := json.Unmarshal(contact, &details.Contact); err != nil {
			return nil, err
		}
	}
	if len(bank) > 0 {
		if err := json.Unmarshal(bank, &details.BankDetails); err != nil {
			return nil, err
		}
	}

	return details, nil
}
