package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-travel-journal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = `id, username, nickname, phone, email, password_hash, avatar,
		birth_year, birth_month, birth_day, extra_fields, created_at`

	createUser = `INSERT INTO users (
			id,
			username,
			nickname,
			phone,
			email,
			password_hash,
			avatar,
			birth_year,
			birth_month,
			birth_day,
			extra_fields
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns + `;`

	userExistsByIdentity = `SELECT EXISTS (
			SELECT 1 FROM users
			WHERE username = $1 OR phone = $2 OR email = $3
		);`

	findUserByUsername = `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`
)

const (
	travelMapColumns = `id, city_name, longitude, latitude, created_at`

	findTravelMapByName = `SELECT ` + travelMapColumns + `
		FROM travel_maps
		WHERE city_name = $1;`

	findTravelMapByID = `SELECT ` + travelMapColumns + `
		FROM travel_maps
		WHERE id = $1;`

	insertTravelMapIfAbsent = `INSERT INTO travel_maps (id, city_name, longitude, latitude)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (city_name) DO NOTHING
		RETURNING ` + travelMapColumns + `;`

	renameTravelMap = `UPDATE travel_maps
		SET city_name = $2
		WHERE id = $1
		RETURNING ` + travelMapColumns + `;`

	deleteTravelMap = `DELETE FROM travel_maps
		WHERE id = $1;`

	selectFootprints = `SELECT DISTINCT m.city_name, m.longitude, m.latitude
		FROM travel_records r
		JOIN travel_maps m ON m.id = r.travel_map_id
		WHERE r.created_by = $1
		ORDER BY m.city_name;`

	selectCitiesByOwner = `SELECT DISTINCT m.id, m.city_name
		FROM travel_records r
		JOIN travel_maps m ON m.id = r.travel_map_id
		WHERE r.created_by = $1
		ORDER BY m.city_name;`
)

const (
	travelRecordColumns = `id, title, travel_map_id, start_time, end_time, description,
		city_image, article, is_shared, created_at, created_by`

	createTravelRecord = `INSERT INTO travel_records (
			id,
			title,
			travel_map_id,
			start_time,
			end_time,
			description,
			city_image,
			article,
			is_shared,
			created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + travelRecordColumns + `;`

	deleteTravelRecord = `DELETE FROM travel_records
		WHERE id = $1;`

	selectTimeline = `SELECT r.id, m.id, m.city_name, r.city_image, r.description, r.title,
			r.start_time, r.end_time
		FROM travel_records r
		JOIN travel_maps m ON m.id = r.travel_map_id
		WHERE r.created_by = $1
		ORDER BY r.start_time DESC, r.id DESC;`
)

const (
	travelAlbumColumns = `id, image_url, city_name, title, travel_record_id, created_by, created_at`

	createTravelAlbum = `INSERT INTO travel_albums (
			id,
			image_url,
			city_name,
			title,
			travel_record_id,
			created_by
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + travelAlbumColumns + `;`

	findTravelAlbumByID = `SELECT ` + travelAlbumColumns + `
		FROM travel_albums
		WHERE id = $1;`

	deleteTravelAlbum = `DELETE FROM travel_albums
		WHERE id = $1;`
)

// recordViewColumns selects a record joined with its city and owner, in the
// order expected by scanRecordView.
var recordViewColumns = []string{
	"r.id", "r.title", "r.travel_map_id", "r.start_time", "r.end_time", "r.description",
	"r.city_image", "r.article", "r.is_shared", "r.created_at", "r.created_by",
	"m.id", "m.city_name", "m.longitude", "m.latitude", "m.created_at",
	"u.id", "u.username", "u.avatar",
}

const recordViewFrom = "travel_records r " +
	"JOIN travel_maps m ON m.id = r.travel_map_id " +
	"JOIN users u ON u.id = r.created_by"

// Sort keys accepted by the list builders. Anything else falls back to
// created_at so that no caller-controlled text reaches ORDER BY.
var (
	recordSortColumns = map[string]string{
		"start_time": "r.start_time",
		"end_time":   "r.end_time",
		"created_at": "r.created_at",
	}
	albumSortColumns = map[string]string{
		"created_at": "a.created_at",
		"title":      "a.title",
		"city_name":  "a.city_name",
	}
)

// escapeLike escapes the LIKE wildcards of s so that it matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func orderDirection(descending bool) string {
	if descending {
		return " DESC"
	}
	return " ASC"
}

// buildFindRecordViewQuery selects one record joined with its city and owner.
func buildFindRecordViewQuery(id string) (string, []any, error) {
	return psql.
		Select(recordViewColumns...).
		From(recordViewFrom).
		Where(sq.Eq{"r.id": id}).
		ToSql()
}

// recordConditions converts the filter into the WHERE clause shared by the
// list and count queries.
func recordConditions(filter models.RecordFilter) sq.And {
	conditions := sq.And{}
	if filter.SharedOnly {
		conditions = append(conditions, sq.Eq{"r.is_shared": true})
	}
	if filter.OwnerID != "" {
		conditions = append(conditions, sq.Eq{"r.created_by": filter.OwnerID})
	}
	if filter.Title != "" {
		conditions = append(conditions, sq.ILike{"r.title": containsPattern(filter.Title)})
	}
	if filter.FilterByMap {
		// an empty slice renders as (1=0)
		conditions = append(conditions, sq.Eq{"r.travel_map_id": filter.TravelMapIDs})
	}
	return conditions
}

// buildListRecordsQuery returns one page of records joined with city and
// owner. Ties on the sort column are broken by id in the same direction so
// that consecutive pages never overlap.
func buildListRecordsQuery(filter models.RecordFilter) (string, []any, error) {
	column, ok := recordSortColumns[filter.SortColumn]
	if !ok {
		column = recordSortColumns["created_at"]
	}
	direction := orderDirection(filter.Descending)

	return psql.
		Select(recordViewColumns...).
		From(recordViewFrom).
		Where(recordConditions(filter)).
		OrderBy(column+direction, "r.id"+direction).
		Limit(filter.Page.Limit()).
		Offset(filter.Page.Offset()).
		ToSql()
}

// buildCountRecordsQuery counts every record matching filter.
func buildCountRecordsQuery(filter models.RecordFilter) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("travel_records r").
		Where(recordConditions(filter)).
		ToSql()
}

// buildUpdateRecordQuery sets only the fields present in update.
func buildUpdateRecordQuery(id string, update models.RecordUpdate) (string, []any, error) {
	builder := psql.Update("travel_records")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.TravelMapID != nil {
		builder = builder.Set("travel_map_id", *update.TravelMapID)
	}
	if update.StartTime != nil {
		builder = builder.Set("start_time", *update.StartTime)
	}
	if update.EndTime != nil {
		builder = builder.Set("end_time", *update.EndTime)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.CityImage != nil {
		builder = builder.Set("city_image", *update.CityImage)
	}
	if update.Article != nil {
		builder = builder.Set("article", *update.Article)
	}
	if update.IsShared != nil {
		builder = builder.Set("is_shared", *update.IsShared)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + travelRecordColumns).
		ToSql()
}

// buildUpdateUserQuery sets only the profile fields present in patch.
func buildUpdateUserQuery(id string, patch models.ProfilePatch) (string, []any, error) {
	builder := psql.Update("users")

	if patch.Nickname != nil {
		builder = builder.Set("nickname", *patch.Nickname)
	}
	if patch.Phone != nil {
		builder = builder.Set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Avatar != nil {
		builder = builder.Set("avatar", *patch.Avatar)
	}
	if patch.Birthday != nil {
		builder = builder.
			Set("birth_year", patch.Birthday.Year).
			Set("birth_month", patch.Birthday.Month).
			Set("birth_day", patch.Birthday.Day)
	}
	if patch.ExtraFields != nil {
		builder = builder.Set("extra_fields", patch.ExtraFields)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildListTravelMapsQuery lists cities, newest first, optionally filtered
// by a case-insensitive name substring.
func buildListTravelMapsQuery(nameFilter string) (string, []any, error) {
	builder := psql.
		Select(travelMapColumns).
		From("travel_maps")
	if nameFilter != "" {
		builder = builder.Where(sq.ILike{"city_name": containsPattern(nameFilter)})
	}

	return builder.
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

// buildTravelMapIDsQuery selects the ids of cities whose name contains
// nameFilter, case-insensitively.
func buildTravelMapIDsQuery(nameFilter string) (string, []any, error) {
	return psql.
		Select("id").
		From("travel_maps").
		Where(sq.ILike{"city_name": containsPattern(nameFilter)}).
		ToSql()
}

// buildListAlbumsQuery returns one page of the owner's photos joined with
// the title of the linked record.
func buildListAlbumsQuery(filter models.AlbumFilter) (string, []any, error) {
	column, ok := albumSortColumns[filter.SortColumn]
	if !ok {
		column = albumSortColumns["created_at"]
	}
	direction := orderDirection(filter.Descending)

	return psql.
		Select(
			"a.id", "a.image_url", "a.city_name", "a.title", "a.travel_record_id",
			"a.created_by", "a.created_at", "r.title",
		).
		From("travel_albums a").
		LeftJoin("travel_records r ON r.id = a.travel_record_id").
		Where(sq.Eq{"a.created_by": filter.OwnerID}).
		OrderBy(column+direction, "a.id"+direction).
		Limit(filter.Page.Limit()).
		Offset(filter.Page.Offset()).
		ToSql()
}

// buildCountAlbumsQuery counts the owner's photos.
func buildCountAlbumsQuery(ownerID string) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("travel_albums").
		Where(sq.Eq{"created_by": ownerID}).
		ToSql()
}
