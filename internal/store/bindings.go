package store

import (
	"context"
	"time"

	"previplan/ent"
	"previplan/ent/company"
	"previplan/ent/preventionplan"
	"previplan/ent/relation"
	"previplan/ent/risk"
	"previplan/ent/riskanalysis"
	"previplan/ent/safetyaudit"
	"previplan/ent/safetydevice"
	"previplan/ent/site"
	"previplan/ent/worker"
	"previplan/ent/workorder"
	"previplan/ent/workpermit"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

// Conversion helpers shared by all bindings. Engine record keys match the
// column names one to one.

func notFound(err error) error {
	if ent.IsNotFound(err) {
		return crud.ErrNotFound
	}
	return err
}

func timePtr(r schema.Record, key string) *time.Time {
	if t, ok := r.Time(key); ok {
		return &t
	}
	return nil
}

func timeAny(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func refAny(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func refID(r schema.Record, key string) int64 {
	id, _ := schema.AsID(r[key])
	return id
}

func strList(r schema.Record, key string) []string {
	if s, ok := r[key].([]string); ok {
		return s
	}
	items := r.Slice(key)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func strListAny(in []string) any {
	if len(in) == 0 {
		return nil
	}
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func imageMap(r schema.Record, key string) map[string]string {
	m, ok := r[key].(map[string]any)
	if !ok {
		return nil
	}
	out := map[string]string{}
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func imageAny(m map[string]string) any {
	if len(m) == 0 {
		return nil
	}
	return map[string]any{"mimeType": m["mimeType"], "imageData": m["imageData"]}
}

// ─── site ───────────────────────────────────────────────────────────────

func siteRecord(row *ent.Site) schema.Record {
	return schema.Record{
		"id":          int64(row.ID),
		"name":        row.Name,
		"address":     row.Address,
		"city":        row.City,
		"postal_code": row.PostalCode,
		"status":      string(row.Status),
		"start_date":  timeAny(row.StartDate),
		"end_date":    timeAny(row.EndDate),
		"updated_at":  row.UpdatedAt,
	}
}

func siteOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.Site.Query().Order(ent.Asc(site.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = siteRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.Site.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return siteRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.Site.Create().
				SetName(r.String("name")).
				SetAddress(r.String("address")).
				SetCity(r.String("city")).
				SetPostalCode(r.String("postal_code")).
				SetNillableStartDate(timePtr(r, "start_date")).
				SetNillableEndDate(timePtr(r, "end_date"))
			if s := r.String("status"); s != "" {
				b.SetStatus(site.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return siteRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.Site.UpdateOneID(int(id)).
				SetName(r.String("name")).
				SetAddress(r.String("address")).
				SetCity(r.String("city")).
				SetPostalCode(r.String("postal_code")).
				SetNillableStartDate(timePtr(r, "start_date")).
				SetNillableEndDate(timePtr(r, "end_date"))
			if s := r.String("status"); s != "" {
				b.SetStatus(site.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return siteRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.Site.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

// ─── company ────────────────────────────────────────────────────────────

func companyRecord(row *ent.Company) schema.Record {
	return schema.Record{
		"id":           int64(row.ID),
		"name":         row.Name,
		"siret":        row.Siret,
		"address":      row.Address,
		"phone":        row.Phone,
		"contact_name": row.ContactName,
		"updated_at":   row.UpdatedAt,
	}
}

func companyOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.Company.Query().Order(ent.Asc(company.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = companyRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.Company.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return companyRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			row, err := c.Company.Create().
				SetName(r.String("name")).
				SetSiret(r.String("siret")).
				SetAddress(r.String("address")).
				SetPhone(r.String("phone")).
				SetContactName(r.String("contact_name")).
				Save(ctx)
			if err != nil {
				return nil, err
			}
			return companyRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			row, err := c.Company.UpdateOneID(int(id)).
				SetName(r.String("name")).
				SetSiret(r.String("siret")).
				SetAddress(r.String("address")).
				SetPhone(r.String("phone")).
				SetContactName(r.String("contact_name")).
				Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return companyRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.Company.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

// ─── worker ─────────────────────────────────────────────────────────────

func workerRecord(row *ent.Worker) schema.Record {
	return schema.Record{
		"id":             int64(row.ID),
		"first_name":     row.FirstName,
		"last_name":      row.LastName,
		"email":          row.Email,
		"phone":          row.Phone,
		"company_id":     refAny(row.CompanyID),
		"certifications": strListAny(row.Certifications),
		"updated_at":     row.UpdatedAt,
	}
}

func workerOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.Worker.Query().Order(ent.Asc(worker.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = workerRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.Worker.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return workerRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			row, err := c.Worker.Create().
				SetFirstName(r.String("first_name")).
				SetLastName(r.String("last_name")).
				SetEmail(r.String("email")).
				SetPhone(r.String("phone")).
				SetCompanyID(refID(r, "company_id")).
				SetCertifications(strList(r, "certifications")).
				Save(ctx)
			if err != nil {
				return nil, err
			}
			return workerRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			row, err := c.Worker.UpdateOneID(int(id)).
				SetFirstName(r.String("first_name")).
				SetLastName(r.String("last_name")).
				SetEmail(r.String("email")).
				SetPhone(r.String("phone")).
				SetCompanyID(refID(r, "company_id")).
				SetCertifications(strList(r, "certifications")).
				Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return workerRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.Worker.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

// ─── risk ───────────────────────────────────────────────────────────────

func riskRecord(row *ent.Risk) schema.Record {
	return schema.Record{
		"id":              int64(row.ID),
		"title":           row.Title,
		"description":     row.Description,
		"level":           string(row.Level),
		"permit_required": row.PermitRequired,
		"logo":            imageAny(row.Logo),
		"updated_at":      row.UpdatedAt,
	}
}

func riskOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.Risk.Query().Order(ent.Asc(risk.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = riskRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.Risk.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return riskRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.Risk.Create().
				SetTitle(r.String("title")).
				SetDescription(r.String("description")).
				SetPermitRequired(r.Bool("permit_required"))
			if s := r.String("level"); s != "" {
				b.SetLevel(risk.Level(s))
			}
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return riskRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.Risk.UpdateOneID(int(id)).
				SetTitle(r.String("title")).
				SetDescription(r.String("description")).
				SetPermitRequired(r.Bool("permit_required"))
			if s := r.String("level"); s != "" {
				b.SetLevel(risk.Level(s))
			}
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return riskRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.Risk.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

// ─── device / permit / audit ────────────────────────────────────────────

func deviceRecord(row *ent.SafetyDevice) schema.Record {
	return schema.Record{
		"id":          int64(row.ID),
		"title":       row.Title,
		"description": row.Description,
		"logo":        imageAny(row.Logo),
		"updated_at":  row.UpdatedAt,
	}
}

func deviceOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.SafetyDevice.Query().Order(ent.Asc(safetydevice.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = deviceRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.SafetyDevice.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return deviceRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.SafetyDevice.Create().
				SetTitle(r.String("title")).
				SetDescription(r.String("description"))
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return deviceRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.SafetyDevice.UpdateOneID(int(id)).
				SetTitle(r.String("title")).
				SetDescription(r.String("description"))
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return deviceRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.SafetyDevice.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

func permitRecord(row *ent.WorkPermit) schema.Record {
	return schema.Record{
		"id":          int64(row.ID),
		"title":       row.Title,
		"description": row.Description,
		"valid_until": timeAny(row.ValidUntil),
		"logo":        imageAny(row.Logo),
		"updated_at":  row.UpdatedAt,
	}
}

func permitOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.WorkPermit.Query().Order(ent.Asc(workpermit.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = permitRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.WorkPermit.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return permitRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.WorkPermit.Create().
				SetTitle(r.String("title")).
				SetDescription(r.String("description")).
				SetNillableValidUntil(timePtr(r, "valid_until"))
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return permitRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.WorkPermit.UpdateOneID(int(id)).
				SetTitle(r.String("title")).
				SetDescription(r.String("description")).
				SetNillableValidUntil(timePtr(r, "valid_until"))
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return permitRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.WorkPermit.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

func auditRecord(row *ent.SafetyAudit) schema.Record {
	return schema.Record{
		"id":          int64(row.ID),
		"title":       row.Title,
		"description": row.Description,
		"logo":        imageAny(row.Logo),
		"updated_at":  row.UpdatedAt,
	}
}

func auditOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.SafetyAudit.Query().Order(ent.Asc(safetyaudit.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = auditRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.SafetyAudit.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return auditRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.SafetyAudit.Create().
				SetTitle(r.String("title")).
				SetDescription(r.String("description"))
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return auditRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.SafetyAudit.UpdateOneID(int(id)).
				SetTitle(r.String("title")).
				SetDescription(r.String("description"))
			if img := imageMap(r, "logo"); img != nil {
				b.SetLogo(img)
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return auditRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.SafetyAudit.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

// ─── analysis ───────────────────────────────────────────────────────────

func analysisRecord(row *ent.RiskAnalysis) schema.Record {
	return schema.Record{
		"id":         int64(row.ID),
		"activity":   row.Activity,
		"measures":   row.Measures,
		"company_id": refAny(row.CompanyID),
		"status":     string(row.Status),
		"updated_at": row.UpdatedAt,
	}
}

func analysisOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.RiskAnalysis.Query().Order(ent.Asc(riskanalysis.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = analysisRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.RiskAnalysis.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return analysisRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.RiskAnalysis.Create().
				SetActivity(r.String("activity")).
				SetMeasures(r.String("measures")).
				SetCompanyID(refID(r, "company_id"))
			if s := r.String("status"); s != "" {
				b.SetStatus(riskanalysis.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return analysisRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.RiskAnalysis.UpdateOneID(int(id)).
				SetActivity(r.String("activity")).
				SetMeasures(r.String("measures")).
				SetCompanyID(refID(r, "company_id"))
			if s := r.String("status"); s != "" {
				b.SetStatus(riskanalysis.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return analysisRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			return notFound(c.RiskAnalysis.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

// ─── pdp / bdt documents ────────────────────────────────────────────────

func pdpRecord(row *ent.PreventionPlan) schema.Record {
	return schema.Record{
		"id":         int64(row.ID),
		"reference":  row.Reference,
		"site_id":    refAny(row.SiteID),
		"company_id": refAny(row.CompanyID),
		"start_date": timeAny(row.StartDate),
		"end_date":   timeAny(row.EndDate),
		"icp_date":   timeAny(row.IcpDate),
		"status":     string(row.Status),
		"updated_at": row.UpdatedAt,
	}
}

func pdpOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.PreventionPlan.Query().Order(ent.Asc(preventionplan.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = pdpRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.PreventionPlan.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return pdpRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.PreventionPlan.Create().
				SetReference(r.String("reference")).
				SetSiteID(refID(r, "site_id")).
				SetCompanyID(refID(r, "company_id")).
				SetNillableStartDate(timePtr(r, "start_date")).
				SetNillableEndDate(timePtr(r, "end_date")).
				SetNillableIcpDate(timePtr(r, "icp_date"))
			if s := r.String("status"); s != "" {
				b.SetStatus(preventionplan.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return pdpRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.PreventionPlan.UpdateOneID(int(id)).
				SetReference(r.String("reference")).
				SetSiteID(refID(r, "site_id")).
				SetCompanyID(refID(r, "company_id")).
				SetNillableStartDate(timePtr(r, "start_date")).
				SetNillableEndDate(timePtr(r, "end_date")).
				SetNillableIcpDate(timePtr(r, "icp_date"))
			if s := r.String("status"); s != "" {
				b.SetStatus(preventionplan.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return pdpRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			// Join rows for the document go with it.
			_, err := c.Relation.Delete().
				Where(relation.ParentTypeEQ(relation.ParentTypePdp), relation.ParentIDEQ(id)).
				Exec(ctx)
			if err != nil {
				return err
			}
			return notFound(c.PreventionPlan.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}

func bdtRecord(row *ent.WorkOrder) schema.Record {
	return schema.Record{
		"id":         int64(row.ID),
		"reference":  row.Reference,
		"site_id":    refAny(row.SiteID),
		"company_id": refAny(row.CompanyID),
		"work_date":  timeAny(row.WorkDate),
		"status":     string(row.Status),
		"updated_at": row.UpdatedAt,
	}
}

func bdtOps(c *ent.Client) crud.Operations {
	return crud.Funcs{
		GetAllFn: func(ctx context.Context) ([]schema.Record, error) {
			rows, err := c.WorkOrder.Query().Order(ent.Asc(workorder.FieldID)).All(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]schema.Record, len(rows))
			for i, row := range rows {
				out[i] = bdtRecord(row)
			}
			return out, nil
		},
		GetByIDFn: func(ctx context.Context, id int64) (schema.Record, error) {
			row, err := c.WorkOrder.Get(ctx, int(id))
			if err != nil {
				return nil, notFound(err)
			}
			return bdtRecord(row), nil
		},
		CreateFn: func(ctx context.Context, r schema.Record) (schema.Record, error) {
			b := c.WorkOrder.Create().
				SetReference(r.String("reference")).
				SetSiteID(refID(r, "site_id")).
				SetCompanyID(refID(r, "company_id")).
				SetNillableWorkDate(timePtr(r, "work_date"))
			if s := r.String("status"); s != "" {
				b.SetStatus(workorder.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, err
			}
			return bdtRecord(row), nil
		},
		UpdateFn: func(ctx context.Context, id int64, r schema.Record) (schema.Record, error) {
			b := c.WorkOrder.UpdateOneID(int(id)).
				SetReference(r.String("reference")).
				SetSiteID(refID(r, "site_id")).
				SetCompanyID(refID(r, "company_id")).
				SetNillableWorkDate(timePtr(r, "work_date"))
			if s := r.String("status"); s != "" {
				b.SetStatus(workorder.Status(s))
			}
			row, err := b.Save(ctx)
			if err != nil {
				return nil, notFound(err)
			}
			return bdtRecord(row), nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			_, err := c.Relation.Delete().
				Where(relation.ParentTypeEQ(relation.ParentTypeBdt), relation.ParentIDEQ(id)).
				Exec(ctx)
			if err != nil {
				return err
			}
			return notFound(c.WorkOrder.DeleteOneID(int(id)).Exec(ctx))
		},
	}
}
