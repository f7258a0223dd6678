// Code generated by ent, DO NOT EDIT.

package ent

import (
	"previplan/ent/account"
	"previplan/ent/company"
	"previplan/ent/preventionplan"
	"previplan/ent/relation"
	"previplan/ent/risk"
	"previplan/ent/riskanalysis"
	"previplan/ent/safetyaudit"
	"previplan/ent/safetydevice"
	"previplan/ent/schema"
	"previplan/ent/site"
	"previplan/ent/worker"
	"previplan/ent/workorder"
	"previplan/ent/workpermit"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescUsername is the schema descriptor for username field.
	accountDescUsername := accountFields[0].Descriptor()
	// account.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	account.UsernameValidator = func() func(string) error {
		validators := accountDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// accountDescPasswordHash is the schema descriptor for password_hash field.
	accountDescPasswordHash := accountFields[1].Descriptor()
	// account.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	account.PasswordHashValidator = accountDescPasswordHash.Validators[0].(func(string) error)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[3].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[0].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = func() func(string) error {
		validators := companyDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescSiret is the schema descriptor for siret field.
	companyDescSiret := companyFields[1].Descriptor()
	// company.SiretValidator is a validator for the "siret" field. It is called by the builders before save.
	company.SiretValidator = companyDescSiret.Validators[0].(func(string) error)
	// companyDescPhone is the schema descriptor for phone field.
	companyDescPhone := companyFields[3].Descriptor()
	// company.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	company.PhoneValidator = companyDescPhone.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[5].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[6].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	preventionplanFields := schema.PreventionPlan{}.Fields()
	_ = preventionplanFields
	// preventionplanDescReference is the schema descriptor for reference field.
	preventionplanDescReference := preventionplanFields[0].Descriptor()
	// preventionplan.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	preventionplan.ReferenceValidator = func() func(string) error {
		validators := preventionplanDescReference.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(reference string) error {
			for _, fn := range fns {
				if err := fn(reference); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// preventionplanDescCreatedAt is the schema descriptor for created_at field.
	preventionplanDescCreatedAt := preventionplanFields[7].Descriptor()
	// preventionplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	preventionplan.DefaultCreatedAt = preventionplanDescCreatedAt.Default.(func() time.Time)
	// preventionplanDescUpdatedAt is the schema descriptor for updated_at field.
	preventionplanDescUpdatedAt := preventionplanFields[8].Descriptor()
	// preventionplan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	preventionplan.DefaultUpdatedAt = preventionplanDescUpdatedAt.Default.(func() time.Time)
	// preventionplan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	preventionplan.UpdateDefaultUpdatedAt = preventionplanDescUpdatedAt.UpdateDefault.(func() time.Time)
	relationFields := schema.Relation{}.Fields()
	_ = relationFields
	// relationDescApplies is the schema descriptor for applies field.
	relationDescApplies := relationFields[4].Descriptor()
	// relation.DefaultApplies holds the default value on creation for the applies field.
	relation.DefaultApplies = relationDescApplies.Default.(bool)
	// relationDescCreatedAt is the schema descriptor for created_at field.
	relationDescCreatedAt := relationFields[5].Descriptor()
	// relation.DefaultCreatedAt holds the default value on creation for the created_at field.
	relation.DefaultCreatedAt = relationDescCreatedAt.Default.(func() time.Time)
	// relationDescUpdatedAt is the schema descriptor for updated_at field.
	relationDescUpdatedAt := relationFields[6].Descriptor()
	// relation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	relation.DefaultUpdatedAt = relationDescUpdatedAt.Default.(func() time.Time)
	// relation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	relation.UpdateDefaultUpdatedAt = relationDescUpdatedAt.UpdateDefault.(func() time.Time)
	riskFields := schema.Risk{}.Fields()
	_ = riskFields
	// riskDescTitle is the schema descriptor for title field.
	riskDescTitle := riskFields[0].Descriptor()
	// risk.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	risk.TitleValidator = func() func(string) error {
		validators := riskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// riskDescPermitRequired is the schema descriptor for permit_required field.
	riskDescPermitRequired := riskFields[3].Descriptor()
	// risk.DefaultPermitRequired holds the default value on creation for the permit_required field.
	risk.DefaultPermitRequired = riskDescPermitRequired.Default.(bool)
	// riskDescCreatedAt is the schema descriptor for created_at field.
	riskDescCreatedAt := riskFields[5].Descriptor()
	// risk.DefaultCreatedAt holds the default value on creation for the created_at field.
	risk.DefaultCreatedAt = riskDescCreatedAt.Default.(func() time.Time)
	// riskDescUpdatedAt is the schema descriptor for updated_at field.
	riskDescUpdatedAt := riskFields[6].Descriptor()
	// risk.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	risk.DefaultUpdatedAt = riskDescUpdatedAt.Default.(func() time.Time)
	// risk.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	risk.UpdateDefaultUpdatedAt = riskDescUpdatedAt.UpdateDefault.(func() time.Time)
	riskanalysisFields := schema.RiskAnalysis{}.Fields()
	_ = riskanalysisFields
	// riskanalysisDescActivity is the schema descriptor for activity field.
	riskanalysisDescActivity := riskanalysisFields[0].Descriptor()
	// riskanalysis.ActivityValidator is a validator for the "activity" field. It is called by the builders before save.
	riskanalysis.ActivityValidator = func() func(string) error {
		validators := riskanalysisDescActivity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(activity string) error {
			for _, fn := range fns {
				if err := fn(activity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// riskanalysisDescCreatedAt is the schema descriptor for created_at field.
	riskanalysisDescCreatedAt := riskanalysisFields[4].Descriptor()
	// riskanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	riskanalysis.DefaultCreatedAt = riskanalysisDescCreatedAt.Default.(func() time.Time)
	// riskanalysisDescUpdatedAt is the schema descriptor for updated_at field.
	riskanalysisDescUpdatedAt := riskanalysisFields[5].Descriptor()
	// riskanalysis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	riskanalysis.DefaultUpdatedAt = riskanalysisDescUpdatedAt.Default.(func() time.Time)
	// riskanalysis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	riskanalysis.UpdateDefaultUpdatedAt = riskanalysisDescUpdatedAt.UpdateDefault.(func() time.Time)
	safetyauditFields := schema.SafetyAudit{}.Fields()
	_ = safetyauditFields
	// safetyauditDescTitle is the schema descriptor for title field.
	safetyauditDescTitle := safetyauditFields[0].Descriptor()
	// safetyaudit.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	safetyaudit.TitleValidator = func() func(string) error {
		validators := safetyauditDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// safetyauditDescCreatedAt is the schema descriptor for created_at field.
	safetyauditDescCreatedAt := safetyauditFields[3].Descriptor()
	// safetyaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	safetyaudit.DefaultCreatedAt = safetyauditDescCreatedAt.Default.(func() time.Time)
	// safetyauditDescUpdatedAt is the schema descriptor for updated_at field.
	safetyauditDescUpdatedAt := safetyauditFields[4].Descriptor()
	// safetyaudit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	safetyaudit.DefaultUpdatedAt = safetyauditDescUpdatedAt.Default.(func() time.Time)
	// safetyaudit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	safetyaudit.UpdateDefaultUpdatedAt = safetyauditDescUpdatedAt.UpdateDefault.(func() time.Time)
	safetydeviceFields := schema.SafetyDevice{}.Fields()
	_ = safetydeviceFields
	// safetydeviceDescTitle is the schema descriptor for title field.
	safetydeviceDescTitle := safetydeviceFields[0].Descriptor()
	// safetydevice.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	safetydevice.TitleValidator = func() func(string) error {
		validators := safetydeviceDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// safetydeviceDescCreatedAt is the schema descriptor for created_at field.
	safetydeviceDescCreatedAt := safetydeviceFields[3].Descriptor()
	// safetydevice.DefaultCreatedAt holds the default value on creation for the created_at field.
	safetydevice.DefaultCreatedAt = safetydeviceDescCreatedAt.Default.(func() time.Time)
	// safetydeviceDescUpdatedAt is the schema descriptor for updated_at field.
	safetydeviceDescUpdatedAt := safetydeviceFields[4].Descriptor()
	// safetydevice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	safetydevice.DefaultUpdatedAt = safetydeviceDescUpdatedAt.Default.(func() time.Time)
	// safetydevice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	safetydevice.UpdateDefaultUpdatedAt = safetydeviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	siteFields := schema.Site{}.Fields()
	_ = siteFields
	// siteDescName is the schema descriptor for name field.
	siteDescName := siteFields[0].Descriptor()
	// site.NameValidator is a validator for the "name" field. It is called by the builders before save.
	site.NameValidator = func() func(string) error {
		validators := siteDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// siteDescPostalCode is the schema descriptor for postal_code field.
	siteDescPostalCode := siteFields[3].Descriptor()
	// site.PostalCodeValidator is a validator for the "postal_code" field. It is called by the builders before save.
	site.PostalCodeValidator = siteDescPostalCode.Validators[0].(func(string) error)
	// siteDescCreatedAt is the schema descriptor for created_at field.
	siteDescCreatedAt := siteFields[7].Descriptor()
	// site.DefaultCreatedAt holds the default value on creation for the created_at field.
	site.DefaultCreatedAt = siteDescCreatedAt.Default.(func() time.Time)
	// siteDescUpdatedAt is the schema descriptor for updated_at field.
	siteDescUpdatedAt := siteFields[8].Descriptor()
	// site.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	site.DefaultUpdatedAt = siteDescUpdatedAt.Default.(func() time.Time)
	// site.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	site.UpdateDefaultUpdatedAt = siteDescUpdatedAt.UpdateDefault.(func() time.Time)
	workorderFields := schema.WorkOrder{}.Fields()
	_ = workorderFields
	// workorderDescReference is the schema descriptor for reference field.
	workorderDescReference := workorderFields[0].Descriptor()
	// workorder.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	workorder.ReferenceValidator = func() func(string) error {
		validators := workorderDescReference.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(reference string) error {
			for _, fn := range fns {
				if err := fn(reference); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workorderDescCreatedAt is the schema descriptor for created_at field.
	workorderDescCreatedAt := workorderFields[5].Descriptor()
	// workorder.DefaultCreatedAt holds the default value on creation for the created_at field.
	workorder.DefaultCreatedAt = workorderDescCreatedAt.Default.(func() time.Time)
	// workorderDescUpdatedAt is the schema descriptor for updated_at field.
	workorderDescUpdatedAt := workorderFields[6].Descriptor()
	// workorder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workorder.DefaultUpdatedAt = workorderDescUpdatedAt.Default.(func() time.Time)
	// workorder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workorder.UpdateDefaultUpdatedAt = workorderDescUpdatedAt.UpdateDefault.(func() time.Time)
	workpermitFields := schema.WorkPermit{}.Fields()
	_ = workpermitFields
	// workpermitDescTitle is the schema descriptor for title field.
	workpermitDescTitle := workpermitFields[0].Descriptor()
	// workpermit.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	workpermit.TitleValidator = func() func(string) error {
		validators := workpermitDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workpermitDescCreatedAt is the schema descriptor for created_at field.
	workpermitDescCreatedAt := workpermitFields[4].Descriptor()
	// workpermit.DefaultCreatedAt holds the default value on creation for the created_at field.
	workpermit.DefaultCreatedAt = workpermitDescCreatedAt.Default.(func() time.Time)
	// workpermitDescUpdatedAt is the schema descriptor for updated_at field.
	workpermitDescUpdatedAt := workpermitFields[5].Descriptor()
	// workpermit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workpermit.DefaultUpdatedAt = workpermitDescUpdatedAt.Default.(func() time.Time)
	// workpermit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workpermit.UpdateDefaultUpdatedAt = workpermitDescUpdatedAt.UpdateDefault.(func() time.Time)
	workerFields := schema.Worker{}.Fields()
	_ = workerFields
	// workerDescFirstName is the schema descriptor for first_name field.
	workerDescFirstName := workerFields[0].Descriptor()
	// worker.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	worker.FirstNameValidator = workerDescFirstName.Validators[0].(func(string) error)
	// workerDescLastName is the schema descriptor for last_name field.
	workerDescLastName := workerFields[1].Descriptor()
	// worker.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	worker.LastNameValidator = workerDescLastName.Validators[0].(func(string) error)
	// workerDescPhone is the schema descriptor for phone field.
	workerDescPhone := workerFields[3].Descriptor()
	// worker.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	worker.PhoneValidator = workerDescPhone.Validators[0].(func(string) error)
	// workerDescCreatedAt is the schema descriptor for created_at field.
	workerDescCreatedAt := workerFields[6].Descriptor()
	// worker.DefaultCreatedAt holds the default value on creation for the created_at field.
	worker.DefaultCreatedAt = workerDescCreatedAt.Default.(func() time.Time)
	// workerDescUpdatedAt is the schema descriptor for updated_at field.
	workerDescUpdatedAt := workerFields[7].Descriptor()
	// worker.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	worker.DefaultUpdatedAt = workerDescUpdatedAt.Default.(func() time.Time)
	// worker.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	worker.UpdateDefaultUpdatedAt = workerDescUpdatedAt.UpdateDefault.(func() time.Time)
}
