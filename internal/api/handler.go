// Package api exposes the HTTP surface: statement upload, transaction
// queries, rule and budget management, and reports. Authentication is out
// of scope; every request operates on the default user.
package api

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ledgerkeep/ledgerkeep/internal/classifier"
	"github.com/ledgerkeep/ledgerkeep/internal/models"
	"github.com/ledgerkeep/ledgerkeep/internal/parser"
	"github.com/ledgerkeep/ledgerkeep/internal/store"
)

// DefaultUser is the implicit account all requests act on.
const DefaultUser = "default"

// ImportResponse is the JSON response from the statement upload endpoint.
type ImportResponse struct {
	Success bool                `json:"success"`
	Bank    string              `json:"bank"`
	Result  models.ImportResult `json:"result"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Store *store.Store
	Log   zerolog.Logger
}

// Register sets up all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", h.handleHealth)

	api.Post("/statements", h.handleImportStatement)
	api.Get("/transactions", h.handleListTransactions)
	api.Post("/transactions/reclassify", h.handleReclassify)
	api.Delete("/transactions/:id", h.handleDeleteTransaction)

	api.Get("/rules/categories", h.handleListCategoryRules)
	api.Post("/rules/categories", h.handleCreateCategoryRule)
	api.Put("/rules/categories/:id", h.handleUpdateCategoryRule)
	api.Delete("/rules/categories/:id", h.handleDeleteCategoryRule)

	api.Get("/rules/tags", h.handleListTagRules)
	api.Post("/rules/tags", h.handleCreateTagRule)
	api.Put("/rules/tags/:id", h.handleUpdateTagRule)
	api.Delete("/rules/tags/:id", h.handleDeleteTagRule)

	api.Post("/rules/seed", h.handleSeedRules)

	api.Get("/budgets", h.handleListBudgets)
	api.Put("/budgets", h.handleUpsertBudget)
	api.Delete("/budgets/:id", h.handleDeleteBudget)

	api.Get("/reports/monthly", h.handleMonthlyReport)
	api.Get("/reports/budgets", h.handleBudgetReport)
	api.Get("/reports/subscriptions", h.handleSubscriptions)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

func (h *Handler) handleImportStatement(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded. Use form field 'file'.")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == ".pdf" {
		return badRequest(c, "PDF statements are not supported. Export CSV or Excel from your bank instead.")
	}

	bank, ok := models.ParseBankType(c.FormValue("bank", string(models.BankDefault)))
	if !ok {
		return badRequest(c, "Unknown bank type. Use default, indian_bank or iob.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "Cannot read uploaded file: "+err.Error())
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "Cannot read uploaded file: "+err.Error())
	}

	opts, err := h.userOptions()
	if err != nil {
		return internalError(c, h.Log, "load rules", err)
	}

	txns, err := parser.Extract(data, fileHeader.Filename, bank, opts)
	if err != nil {
		return badRequest(c, "Extraction failed: "+err.Error())
	}

	result := h.Store.InsertTransactions(DefaultUser, string(bank), txns)
	h.Log.Info().
		Str("file", fileHeader.Filename).
		Str("bank", string(bank)).
		Int("parsed", result.Parsed).
		Int("inserted", result.Inserted).
		Int("skipped", result.Skipped).
		Msg("statement imported")

	return c.JSON(ImportResponse{Success: true, Bank: string(bank), Result: result})
}

// userOptions loads stored rules into extraction options so imports
// classify with user edits when any exist.
func (h *Handler) userOptions() (parser.Options, error) {
	catRules, err := h.Store.ListCategoryRules(DefaultUser)
	if err != nil {
		return parser.Options{}, err
	}
	tagRules, err := h.Store.ListTagRules(DefaultUser)
	if err != nil {
		return parser.Options{}, err
	}
	return parser.Options{CategoryRules: catRules, TagRules: tagRules}, nil
}

func (h *Handler) handleListTransactions(c *fiber.Ctx) error {
	month := c.Query("month")
	if month != "" && !validMonth(month) {
		return badRequest(c, "month must be YYYY-MM")
	}
	txns, err := h.Store.ListTransactions(DefaultUser, month)
	if err != nil {
		return internalError(c, h.Log, "list transactions", err)
	}
	if txns == nil {
		txns = []store.StoredTransaction{}
	}
	return c.JSON(fiber.Map{"transactions": txns, "count": len(txns)})
}

func (h *Handler) handleReclassify(c *fiber.Ctx) error {
	opts, err := h.userOptions()
	if err != nil {
		return internalError(c, h.Log, "load rules", err)
	}
	txns, err := h.Store.ListTransactions(DefaultUser, "")
	if err != nil {
		return internalError(c, h.Log, "list transactions", err)
	}

	updated := 0
	for _, txn := range txns {
		tables := tablesFor(txn.Bank)
		category := tables.ClassifyCategory(txn.Description, opts.CategoryRules)
		tags := tables.ClassifyTags(txn.Description, opts.TagRules)
		if category == txn.Category && equalTags(tags, txn.Tags) {
			continue
		}
		if err := h.Store.UpdateClassification(txn.ID, category, tags); err != nil {
			return internalError(c, h.Log, "update classification", err)
		}
		updated++
	}

	h.Log.Info().Int("updated", updated).Int("total", len(txns)).Msg("reclassified transactions")
	return c.JSON(fiber.Map{"updated": updated, "total": len(txns)})
}

func (h *Handler) handleDeleteTransaction(c *fiber.Ctx) error {
	if err := h.Store.DeleteTransaction(DefaultUser, c.Params("id")); err != nil {
		return notFound(c, err.Error())
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func tablesFor(bank string) classifier.Tables {
	if bank == string(models.BankIOB) {
		return classifier.IOBTables()
	}
	return classifier.DefaultTables()
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (h *Handler) handleListCategoryRules(c *fiber.Ctx) error {
	rules, err := h.Store.ListCategoryRules(DefaultUser)
	if err != nil {
		return internalError(c, h.Log, "list category rules", err)
	}
	if rules == nil {
		rules = []models.CategoryRule{}
	}
	return c.JSON(rules)
}

func (h *Handler) handleCreateCategoryRule(c *fiber.Ctx) error {
	var rule models.CategoryRule
	if err := c.BodyParser(&rule); err != nil {
		return badRequest(c, "Invalid rule body: "+err.Error())
	}
	if rule.Category == "" || rule.Pattern == "" {
		return badRequest(c, "category and pattern are required")
	}
	rule.UserID = DefaultUser
	if rule.Match == "" {
		rule.Match = models.MatchContains
	}
	id, err := h.Store.CreateCategoryRule(rule)
	if err != nil {
		return internalError(c, h.Log, "create category rule", err)
	}
	rule.ID = id
	return c.Status(fiber.StatusCreated).JSON(rule)
}

func (h *Handler) handleUpdateCategoryRule(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "rule id must be an integer")
	}
	var rule models.CategoryRule
	if err := c.BodyParser(&rule); err != nil {
		return badRequest(c, "Invalid rule body: "+err.Error())
	}
	if rule.Category == "" || rule.Pattern == "" {
		return badRequest(c, "category and pattern are required")
	}
	rule.ID = id
	rule.UserID = DefaultUser
	if rule.Match == "" {
		rule.Match = models.MatchContains
	}
	if err := h.Store.UpdateCategoryRule(rule); err != nil {
		return notFound(c, err.Error())
	}
	return c.JSON(rule)
}

func (h *Handler) handleDeleteCategoryRule(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "rule id must be an integer")
	}
	if err := h.Store.DeleteCategoryRule(DefaultUser, id); err != nil {
		return notFound(c, err.Error())
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *Handler) handleListTagRules(c *fiber.Ctx) error {
	rules, err := h.Store.ListTagRules(DefaultUser)
	if err != nil {
		return internalError(c, h.Log, "list tag rules", err)
	}
	if rules == nil {
		rules = []models.TagRule{}
	}
	return c.JSON(rules)
}

func (h *Handler) handleCreateTagRule(c *fiber.Ctx) error {
	var rule models.TagRule
	if err := c.BodyParser(&rule); err != nil {
		return badRequest(c, "Invalid rule body: "+err.Error())
	}
	if rule.TagName == "" || rule.Pattern == "" {
		return badRequest(c, "tagName and pattern are required")
	}
	rule.UserID = DefaultUser
	if rule.Match == "" {
		rule.Match = models.MatchContains
	}
	id, err := h.Store.CreateTagRule(rule)
	if err != nil {
		return internalError(c, h.Log, "create tag rule", err)
	}
	rule.ID = id
	rule.TagName = strings.ToUpper(rule.TagName)
	return c.Status(fiber.StatusCreated).JSON(rule)
}

func (h *Handler) handleUpdateTagRule(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "rule id must be an integer")
	}
	var rule models.TagRule
	if err := c.BodyParser(&rule); err != nil {
		return badRequest(c, "Invalid rule body: "+err.Error())
	}
	if rule.TagName == "" || rule.Pattern == "" {
		return badRequest(c, "tagName and pattern are required")
	}
	rule.ID = id
	rule.UserID = DefaultUser
	if rule.Match == "" {
		rule.Match = models.MatchContains
	}
	if err := h.Store.UpdateTagRule(rule); err != nil {
		return notFound(c, err.Error())
	}
	rule.TagName = strings.ToUpper(rule.TagName)
	return c.JSON(rule)
}

func (h *Handler) handleDeleteTagRule(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "rule id must be an integer")
	}
	if err := h.Store.DeleteTagRule(DefaultUser, id); err != nil {
		return notFound(c, err.Error())
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *Handler) handleSeedRules(c *fiber.Ctx) error {
	cats, tags := classifier.DefaultTables().SeedRules()
	n, err := h.Store.SeedRules(DefaultUser, cats, tags)
	if err != nil {
		return internalError(c, h.Log, "seed rules", err)
	}
	return c.JSON(fiber.Map{"seeded": n})
}

func (h *Handler) handleListBudgets(c *fiber.Ctx) error {
	month := c.Query("month")
	if month != "" && !validMonth(month) {
		return badRequest(c, "month must be YYYY-MM")
	}
	budgets, err := h.Store.ListBudgets(DefaultUser, month)
	if err != nil {
		return internalError(c, h.Log, "list budgets", err)
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}
	return c.JSON(budgets)
}

func (h *Handler) handleUpsertBudget(c *fiber.Ctx) error {
	var budget models.Budget
	if err := c.BodyParser(&budget); err != nil {
		return badRequest(c, "Invalid budget body: "+err.Error())
	}
	if budget.Category == "" || !validMonth(budget.Month) {
		return badRequest(c, "category and month (YYYY-MM) are required")
	}
	if _, err := strconv.ParseFloat(budget.Limit, 64); err != nil {
		return badRequest(c, "limit must be a decimal number")
	}
	budget.UserID = DefaultUser
	if err := h.Store.UpsertBudget(budget); err != nil {
		return internalError(c, h.Log, "upsert budget", err)
	}
	return c.JSON(budget)
}

func (h *Handler) handleDeleteBudget(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "budget id must be an integer")
	}
	if err := h.Store.DeleteBudget(DefaultUser, id); err != nil {
		return notFound(c, err.Error())
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *Handler) handleMonthlyReport(c *fiber.Ctx) error {
	month := c.Query("month")
	if !validMonth(month) {
		return badRequest(c, "month query parameter is required as YYYY-MM")
	}
	totals, err := h.Store.MonthlyCategoryTotals(DefaultUser, month)
	if err != nil {
		return internalError(c, h.Log, "monthly report", err)
	}
	return c.JSON(fiber.Map{"month": month, "categories": totals})
}

func (h *Handler) handleBudgetReport(c *fiber.Ctx) error {
	month := c.Query("month")
	if !validMonth(month) {
		return badRequest(c, "month query parameter is required as YYYY-MM")
	}
	report, err := h.Store.BudgetReport(DefaultUser, month)
	if err != nil {
		return internalError(c, h.Log, "budget report", err)
	}
	if report == nil {
		report = []store.BudgetStatus{}
	}
	return c.JSON(report)
}

func (h *Handler) handleSubscriptions(c *fiber.Ctx) error {
	candidates, err := h.Store.RecurringCandidates(DefaultUser)
	if err != nil {
		return internalError(c, h.Log, "subscription report", err)
	}
	if candidates == nil {
		candidates = []store.RecurringCandidate{}
	}
	return c.JSON(candidates)
}

func validMonth(s string) bool {
	if len(s) != 7 || s[4] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	return month >= 1 && month <= 12
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": msg})
}

func internalError(c *fiber.Ctx, log zerolog.Logger, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": op + ": " + err.Error()})
}
