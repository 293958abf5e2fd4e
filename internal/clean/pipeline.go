package clean

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/listclean-cli/internal/directory"
	"github.com/sells-group/listclean-cli/internal/email"
	"github.com/sells-group/listclean-cli/internal/model"
	"github.com/sells-group/listclean-cli/internal/normalize"
)

// Result is the output of one cleaning run.
type Result struct {
	Records    []model.CleanedRecord
	Patterns   map[string]model.CompanyEmailPattern
	Duplicates []int
	Removed    int
	Summary    Summary
}

// Pipeline applies the configured cleaning steps to a dataset. Records are
// independent during the normalization pass; pattern analysis and scoring
// are whole-dataset passes that run strictly afterwards.
type Pipeline struct {
	opts      Options
	namer     *normalize.Namer
	companyer *normalize.Companyer
	validator *email.Validator
}

// New builds a Pipeline. dir may be nil when no company directory is
// configured.
func New(opts Options, dir directory.Directory) *Pipeline {
	if opts.MaxLists <= 0 {
		opts.MaxLists = 1
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 1
	}
	return &Pipeline{
		opts:      opts,
		namer:     normalize.NewNamer(opts.StripEmoji),
		companyer: normalize.NewCompanyer(dir, opts.SplitTaglines, opts.StripEmoji),
		validator: email.NewValidator(opts.StrictEmail),
	}
}

// Run cleans the dataset: normalize every record, analyze company email
// patterns across the normalized dataset, score each record, then
// optionally drop duplicates. The two dataset-wide passes cannot be fused
// into the per-record loop because consensus needs every record's cleaned
// company and name fields first.
func (p *Pipeline) Run(ctx context.Context, records []model.Record) (*Result, error) {
	log := zap.L().With(zap.Int("records", len(records)))
	log.Info("clean: starting run")

	cleaned := make([]model.CleanedRecord, len(records))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Parallelism)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			cleaned[i] = p.normalizeRecord(i, rec)
			return nil
		})
	}
	// Barrier: pattern analysis needs the whole dataset normalized.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debug("clean: fields normalized")

	var patterns map[string]model.CompanyEmailPattern
	if p.opts.CheckEmailPattern {
		patterns = email.Analyze(cleaned, p.validator)
		log.Debug("clean: patterns analyzed", zap.Int("companies", len(patterns)))
	}

	for i := range cleaned {
		rec := &cleaned[i]
		rec.PatternMatch = model.PatternMatchNotApplicable
		if p.opts.CheckEmailPattern && rec.EmailResult.IsValid {
			rec.PatternMatch = email.Matches(rec.Email, rec.FirstName, rec.LastName, rec.Company, patterns)
		}
		if p.opts.QualityScore {
			rec.QualityScore = Score(*rec, p.opts.CheckEmailPattern)
		}
	}

	result := &Result{
		Records:  cleaned,
		Patterns: patterns,
	}
	result.Duplicates = FindDuplicates(cleaned)

	if p.opts.RemoveDuplicates {
		result.Records, result.Removed = RemoveDuplicates(cleaned)
	}

	result.Summary = Summarize(result.Records, p.opts)
	log.Info("clean: run complete",
		zap.Int("fields_changed", result.Summary.FieldsChanged),
		zap.Float64("percent_changed", result.Summary.PercentChanged),
		zap.Int("duplicates_removed", result.Removed),
	)
	return result, nil
}

// normalizeRecord applies the per-record steps. A failure in any single
// field keeps that field's trimmed original and continues; one bad value
// must not abort the batch.
func (p *Pipeline) normalizeRecord(idx int, rec model.Record) model.CleanedRecord {
	out := model.CleanedRecord{Index: idx}
	originals := [model.FieldCount]string{}
	for _, f := range model.Fields() {
		originals[f] = strings.TrimSpace(rec.Get(f))
		out.Set(f, originals[f])
	}

	if p.opts.Names {
		out.FirstName = guardField(idx, model.FieldFirstName, originals[model.FieldFirstName], func() string {
			return p.namer.First(originals[model.FieldFirstName])
		})
		out.LastName = guardField(idx, model.FieldLastName, originals[model.FieldLastName], func() string {
			return p.namer.Last(originals[model.FieldLastName])
		})
	}
	if p.opts.Company {
		out.Company = guardField(idx, model.FieldCompany, originals[model.FieldCompany], func() string {
			return p.companyer.Company(originals[model.FieldCompany])
		})
	}

	out.Email = strings.ToLower(model.Presentf(originals[model.FieldEmail]))
	if p.opts.ValidateEmail {
		out.EmailResult = p.validator.Validate(out.Email)
	}

	if p.opts.InferLastName && out.LastName == "" {
		if inferred, ok := email.InferLast(out.FirstName, out.Email); ok {
			out.LastName = p.namer.Last(inferred)
		}
	}

	if p.opts.Phone {
		out.Phone = guardField(idx, model.FieldPhone, originals[model.FieldPhone], func() string {
			canonical, valid := normalize.Phone(originals[model.FieldPhone], p.opts.DefaultRegion)
			out.PhoneValid = valid
			return canonical
		})
	}
	if p.opts.JobTitle {
		out.JobTitle = guardField(idx, model.FieldJobTitle, originals[model.FieldJobTitle], func() string {
			return normalize.JobTitle(originals[model.FieldJobTitle], p.opts.StripEmoji)
		})
	}

	for _, f := range model.Fields() {
		out.Changed[f] = out.Get(f) != originals[f]
	}
	return out
}

// guardField isolates a single field's cleaning: on panic the trimmed
// original is retained and the run continues.
func guardField(idx int, f model.Field, original string, fn func() string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("clean: field cleaning failed, keeping original",
				zap.Int("record", idx),
				zap.String("field", f.String()),
				zap.Any("panic", r),
			)
			result = original
		}
	}()
	return fn()
}
