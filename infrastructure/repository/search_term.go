package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-api/internal/domain"
)

const (
	searchTermsTable = "search_terms st"
)

type SearchTermRepository interface {
	// limit nil significa sem limite
	RankByAlias(ctx context.Context, alias string, limit *uint64) ([]domain.SearchTerm, error)
	RankByStructuredValue(ctx context.Context, structuredValue string, limit *uint64) ([]domain.SearchTerm, error)
}

type searchTermRepository struct {
	conn *postgres.Connection
	db   *sqlx.DB
}

func NewSearchTermRepository(conn *postgres.Connection) SearchTermRepository {
	return &searchTermRepository{
		conn: conn,
		db:   conn.Sqlx(),
	}
}

type searchTermRow struct {
	ID              int64           `db:"id"`
	Date            dbDate          `db:"date"`
	AdGroupID       int64           `db:"ad_group_id"`
	Clicks          int64           `db:"clicks"`
	Cost            decimal.Decimal `db:"cost"`
	ConversionValue decimal.Decimal `db:"conversion_value"`
	Conversions     int64           `db:"conversions"`
	SearchTerm      string          `db:"search_term"`
	RoAS            decimal.Decimal `db:"roas"`
	CampaignID      int64           `db:"campaign_id"`
	Alias           sql.NullString  `db:"alias"`
	AdGroupStatus   sql.NullString  `db:"ad_group_status"`
	StructureValue  sql.NullString  `db:"structure_value"`
	CampaignStatus  sql.NullString  `db:"campaign_status"`
}

func (r *searchTermRepository) RankByAlias(ctx context.Context, alias string, limit *uint64) ([]domain.SearchTerm, error) {
	return r.rank(ctx, squirrel.Eq{"ag.alias": alias}, limit)
}

func (r *searchTermRepository) RankByStructuredValue(ctx context.Context, structuredValue string, limit *uint64) ([]domain.SearchTerm, error) {
	return r.rank(ctx, squirrel.Eq{"c.structure_value": structuredValue}, limit)
}

// rank ordena por roas decrescente; empates são resolvidos pelo id
func (r *searchTermRepository) rank(ctx context.Context, filter squirrel.Eq, limit *uint64) ([]domain.SearchTerm, error) {
	queryBuilder := squirrel.
		Select(
			"st.id",
			"st.date",
			"st.ad_group_id",
			"st.clicks",
			"st.cost",
			"st.conversion_value",
			"st.conversions",
			"st.search_term",
			"st.roas",
			"ag.campaign_id",
			"ag.alias",
			"ag.status AS ad_group_status",
			"c.structure_value",
			"c.status AS campaign_status",
		).
		From(searchTermsTable).
		Join("ad_groups ag ON ag.id = st.ad_group_id").
		Join("campaigns c ON c.id = ag.campaign_id").
		Where(filter).
		OrderBy("st.roas DESC", "st.id ASC").
		PlaceholderFormat(r.conn.Placeholder())

	if limit != nil {
		queryBuilder = queryBuilder.Limit(*limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rows []searchTermRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	terms := make([]domain.SearchTerm, len(rows))
	for i, row := range rows {
		terms[i] = row.toDomain()
	}

	return terms, nil
}

func (row searchTermRow) toDomain() domain.SearchTerm {
	return domain.SearchTerm{
		ID:              row.ID,
		Date:            time.Time(row.Date),
		AdGroupID:       row.AdGroupID,
		Clicks:          row.Clicks,
		Cost:            row.Cost,
		ConversionValue: row.ConversionValue,
		Conversions:     row.Conversions,
		SearchTerm:      row.SearchTerm,
		RoAS:            row.RoAS,
		AdGroup: &domain.AdGroup{
			ID:         row.AdGroupID,
			CampaignID: row.CampaignID,
			Alias:      row.Alias.String,
			Status:     row.AdGroupStatus.String,
			Campaign: &domain.Campaign{
				ID:             row.CampaignID,
				StructureValue: row.StructureValue.String,
				Status:         row.CampaignStatus.String,
			},
		},
	}
}

// dbDate aceita DATE como time.Time (postgres) ou texto (sqlite)
type dbDate time.Time

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

func (d *dbDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = dbDate(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		*d = dbDate(time.Time{})
		return nil
	}
	return fmt.Errorf("tipo não suportado para data: %T", src)
}

func (d *dbDate) parse(s string) error {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = dbDate(t)
			return nil
		}
	}
	return fmt.Errorf("data inválida: %q", s)
}
