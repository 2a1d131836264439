package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/contact-harvester/internal/dto"
	"github.com/octobees/contact-harvester/internal/entity"
)

// RecordsRepository describes persistence operations for contact records.
// Records are append-only: each harvest run writes its own rows and history
// is kept per run.
type RecordsRepository interface {
	Insert(ctx context.Context, record *entity.ContactRecord) error
	List(ctx context.Context, filter dto.RecordFilter) ([]entity.ContactRecord, error)
}

// PGXRecordsRepository implements RecordsRepository using pgx.
type PGXRecordsRepository struct {
	pool pgxPool
}

// NewPGXRecordsRepository wires a pgx backed repository.
func NewPGXRecordsRepository(pool *pgxpool.Pool) *PGXRecordsRepository {
	return &PGXRecordsRepository{pool: pool}
}

var _ pgxPool = (*pgxpool.Pool)(nil)

const insertRecordSQL = `
        INSERT INTO contact_records (
            id,
            run_id,
            company_name,
            website,
            domain,
            emails,
            phones,
            clean_emails,
            phones_e164,
            linkedin,
            team_members,
            about_url,
            contact_url,
            score,
            harvested_at,
            created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12, $13, $14, $15, NOW());
    `

// Insert appends one contact record. Records are never updated in place.
func (r *PGXRecordsRepository) Insert(ctx context.Context, record *entity.ContactRecord) error {
	if record == nil {
		return fmt.Errorf("record payload is nil")
	}

	members := record.TeamMembers
	if members == nil {
		members = []entity.TeamMember{}
	}
	membersJSON, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("marshal team members: %w", err)
	}

	_, err = r.pool.Exec(ctx, insertRecordSQL,
		record.ID,
		record.RunID,
		record.CompanyName,
		record.Website,
		record.Domain,
		stringSliceOrEmpty(record.Emails),
		stringSliceOrEmpty(record.Phones),
		stringSliceOrEmpty(record.CleanEmails),
		stringSliceOrEmpty(record.PhonesE164),
		record.LinkedIn,
		string(membersJSON),
		record.AboutURL,
		record.ContactURL,
		record.Score,
		record.HarvestedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact record: %w", err)
	}

	return nil
}

// List retrieves contact records matching the provided filter, most recent
// first within a run, highest score first across equal timestamps.
func (r *PGXRecordsRepository) List(ctx context.Context, filter dto.RecordFilter) ([]entity.ContactRecord, error) {
	baseQuery := strings.Builder{}
	baseQuery.WriteString(`
        SELECT
            id,
            run_id,
            company_name,
            website,
            domain,
            emails,
            phones,
            clean_emails,
            phones_e164,
            linkedin,
            team_members,
            about_url,
            contact_url,
            score,
            harvested_at,
            created_at
        FROM contact_records
    `)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		clauses = append(clauses, fmt.Sprintf("(company_name ILIKE $%d OR domain ILIKE $%d)", idx, idx+1))
		args = append(args, pattern, pattern)
		idx += 2
	}
	if filter.Domain != "" {
		clauses = append(clauses, fmt.Sprintf("domain = LOWER($%d)", idx))
		args = append(args, filter.Domain)
		idx++
	}
	if filter.HasEmail {
		clauses = append(clauses, "cardinality(emails) > 0")
	}
	if filter.HasPhone {
		clauses = append(clauses, "cardinality(phones) > 0")
	}
	if filter.HasLinkedIn {
		clauses = append(clauses, "linkedin IS NOT NULL")
	}
	if filter.HasTeam {
		clauses = append(clauses, "jsonb_array_length(team_members) > 0")
	}
	if filter.MinScore != nil {
		clauses = append(clauses, fmt.Sprintf("score >= $%d", idx))
		args = append(args, *filter.MinScore)
		idx++
	}
	if filter.HarvestedFrom != nil {
		clauses = append(clauses, fmt.Sprintf("harvested_at >= $%d", idx))
		args = append(args, *filter.HarvestedFrom)
		idx++
	}
	if filter.LatestRunOnly {
		runQuery := "SELECT run_id FROM contact_records"
		if len(clauses) > 0 {
			runQuery += " WHERE " + strings.Join(clauses, " AND ")
		}
		runQuery += " GROUP BY run_id ORDER BY MAX(harvested_at) DESC LIMIT 1"

		var latestRunID sql.NullString
		err := r.pool.QueryRow(ctx, runQuery, args...).Scan(&latestRunID)
		if err != nil && err != pgx.ErrNoRows {
			return nil, fmt.Errorf("determine latest harvest run: %w", err)
		}
		if latestRunID.Valid {
			parsed, parseErr := uuid.Parse(latestRunID.String)
			if parseErr != nil {
				return nil, fmt.Errorf("parse latest run id: %w", parseErr)
			}
			clauses = append(clauses, fmt.Sprintf("run_id = $%d", idx))
			args = append(args, parsed)
			idx++
		}
	}

	if len(clauses) > 0 {
		baseQuery.WriteString(" WHERE ")
		baseQuery.WriteString(strings.Join(clauses, " AND "))
	}

	baseQuery.WriteString(" ORDER BY harvested_at DESC, score DESC, company_name ASC")

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	offset := (page - 1) * perPage
	baseQuery.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, offset)

	rows, err := r.pool.Query(ctx, baseQuery.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list contact records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]entity.ContactRecord, error) {
	var records []entity.ContactRecord
	for rows.Next() {
		var (
			rec         entity.ContactRecord
			emails      []string
			phones      []string
			cleanEmails []string
			phonesE164  []string
			linkedin    sql.NullString
			membersJSON []byte
			aboutURL    sql.NullString
			contactURL  sql.NullString
		)

		err := rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.CompanyName,
			&rec.Website,
			&rec.Domain,
			&emails,
			&phones,
			&cleanEmails,
			&phonesE164,
			&linkedin,
			&membersJSON,
			&aboutURL,
			&contactURL,
			&rec.Score,
			&rec.HarvestedAt,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact record: %w", err)
		}

		if len(emails) > 0 {
			rec.Emails = append([]string(nil), emails...)
		}
		if len(phones) > 0 {
			rec.Phones = append([]string(nil), phones...)
		}
		if len(cleanEmails) > 0 {
			rec.CleanEmails = append([]string(nil), cleanEmails...)
		}
		if len(phonesE164) > 0 {
			rec.PhonesE164 = append([]string(nil), phonesE164...)
		}
		if len(membersJSON) > 0 {
			if err := json.Unmarshal(membersJSON, &rec.TeamMembers); err != nil {
				return nil, fmt.Errorf("unmarshal team members: %w", err)
			}
		}
		rec.LinkedIn = nullStringToPtr(linkedin)
		rec.AboutURL = nullStringToPtr(aboutURL)
		rec.ContactURL = nullStringToPtr(contactURL)

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact records: %w", err)
	}
	return records, nil
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}

func stringSliceOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
