package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/aneliseestevam/structa-web/pkg/application/dto"
	"github.com/aneliseestevam/structa-web/pkg/application/services"
	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/domain/repositories"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/events"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/repositories/csv"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/repositories/memory"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/seed"
	"github.com/aneliseestevam/structa-web/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	DataDir   string
	Report    string
	Format    string
	OutputDir string
	ProjectID string
	From      string
	To        string
	Status    string
	TopLimit  int
	Verbose   bool
	Help      bool
}

// ReportCommand handles report generation over a loaded dataset
type ReportCommand struct {
	config Config
	logger *zap.Logger
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config, logger *zap.Logger) *ReportCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportCommand{
		config: config,
		logger: logger,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	filter, err := c.parseFilter()
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	store, err := c.buildStore()
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	snapshot := store.Snapshot()
	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Projects: %d\n", len(snapshot.Projects))
		fmt.Printf("  Phases: %d\n", len(snapshot.Phases))
		fmt.Printf("  Materials: %d\n", len(snapshot.Materials))
		fmt.Printf("  Movements: %d\n", len(snapshot.Movements))
		fmt.Printf("  Purchases: %d\n", len(snapshot.Purchases))
		fmt.Println()
	}

	report, err := c.buildReport(snapshot, filter)
	if err != nil {
		return err
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}

	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

// validateInputs validates the command configuration
func (c *ReportCommand) validateInputs() error {
	switch c.config.Report {
	case "general", "costs", "progress", "productivity", "materials", "stock", "dashboard":
	default:
		return fmt.Errorf("unknown report type: %s", c.config.Report)
	}

	switch c.config.Format {
	case "text", "json", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown output format: %s", c.config.Format)
	}

	return nil
}

// parseFilter builds the report filter from the command flags
func (c *ReportCommand) parseFilter() (dto.Filter, error) {
	filter := dto.Filter{ProjectID: c.config.ProjectID}

	if c.config.From != "" {
		from, err := time.Parse("2006-01-02", c.config.From)
		if err != nil {
			return dto.Filter{}, fmt.Errorf("invalid -from date: %s (expected YYYY-MM-DD)", c.config.From)
		}
		filter.From = from
	}
	if c.config.To != "" {
		to, err := time.Parse("2006-01-02", c.config.To)
		if err != nil {
			return dto.Filter{}, fmt.Errorf("invalid -to date: %s (expected YYYY-MM-DD)", c.config.To)
		}
		filter.To = to
	}
	if c.config.Status != "" {
		status, err := entities.ParseProjectStatus(c.config.Status)
		if err != nil {
			return dto.Filter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// buildStore loads the dataset from the data directory, or falls back
// to the built-in sample dataset when no directory is given.
func (c *ReportCommand) buildStore() (*memory.Store, error) {
	store := memory.NewStoreWithNotifier(events.NewBus())

	if c.config.DataDir == "" {
		if c.config.Verbose {
			fmt.Println("📂 No data directory given, using the sample dataset")
		}
		if err := seed.Populate(store); err != nil {
			return nil, err
		}
		return store, nil
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loading data from %s...\n", c.config.DataDir)
	}

	snapshot, err := csv.NewLoader().LoadDataset(c.config.DataDir)
	if err != nil {
		return nil, err
	}

	if err := store.LoadProjects(snapshot.Projects); err != nil {
		return nil, err
	}
	if err := store.LoadPhases(snapshot.Phases); err != nil {
		return nil, err
	}
	if err := store.LoadMaterials(snapshot.Materials); err != nil {
		return nil, err
	}
	if err := store.LoadMovements(snapshot.Movements); err != nil {
		return nil, err
	}
	if err := store.LoadPurchases(snapshot.Purchases); err != nil {
		return nil, err
	}

	return store, nil
}

// buildReport runs the requested report and renders it into tables
func (c *ReportCommand) buildReport(snapshot repositories.Snapshot, filter dto.Filter) (*output.Report, error) {
	reports := services.NewReportService(c.logger)
	dashboard := services.NewDashboardService(c.logger)
	now := time.Now()

	switch c.config.Report {
	case "general":
		summary := reports.GeneralSummary(snapshot, filter)
		return &output.Report{
			Title:     "General Summary",
			Generated: now,
			Data:      summary,
			Tables: []output.Table{{
				Title:   "General Summary",
				Headers: []string{"Metric", "Value"},
				Rows: [][]string{
					{"Total Projects", strconv.Itoa(summary.TotalProjects)},
					{"Planned Projects", strconv.Itoa(summary.PlannedProjects)},
					{"Active Projects", strconv.Itoa(summary.ActiveProjects)},
					{"Completed Projects", strconv.Itoa(summary.CompletedProjects)},
					{"Total Phases", strconv.Itoa(summary.TotalPhases)},
					{"Total Materials", strconv.Itoa(summary.TotalMaterials)},
					{"Total Purchase Cost", summary.TotalPurchaseCost.StringFixed(2)},
				},
			}},
		}, nil

	case "costs":
		rows := reports.CostAnalysis(snapshot, filter)
		table := output.Table{
			Title:   "Cost Analysis",
			Headers: []string{"Project", "Budget", "Actual Cost", "Variance", "Used"},
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{
				row.ProjectName,
				row.Budget.StringFixed(2),
				row.ActualCost.StringFixed(2),
				row.Variance.StringFixed(2),
				row.PercentUsed,
			})
		}
		return &output.Report{Title: "Cost Analysis", Generated: now, Data: rows, Tables: []output.Table{table}}, nil

	case "progress":
		rows := reports.ProgressAnalysis(snapshot, filter)
		table := output.Table{
			Title:   "Progress Analysis",
			Headers: []string{"Project", "Phases", "Completed", "Average Progress"},
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{
				row.ProjectName,
				strconv.Itoa(row.TotalPhases),
				strconv.Itoa(row.CompletedPhases),
				fmt.Sprintf("%d%%", row.AverageProgress),
			})
		}
		return &output.Report{Title: "Progress Analysis", Generated: now, Data: rows, Tables: []output.Table{table}}, nil

	case "productivity":
		rows := reports.ProductivityAnalysis(snapshot, filter)
		table := output.Table{
			Title:   "Productivity Analysis",
			Headers: []string{"Project", "Elapsed Days", "Completed Phases", "Phases per Month"},
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{
				row.ProjectName,
				strconv.Itoa(row.ElapsedDays),
				strconv.Itoa(row.CompletedPhases),
				row.ProductivityRate,
			})
		}
		return &output.Report{Title: "Productivity Analysis", Generated: now, Data: rows, Tables: []output.Table{table}}, nil

	case "materials":
		rows := reports.MaterialUsage(snapshot, filter)
		table := output.Table{
			Title:   "Material Usage",
			Headers: []string{"Material", "Unit", "Purchased", "Total Value", "Current Stock"},
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{
				row.MaterialName,
				row.Unit,
				strconv.FormatInt(int64(row.QuantityPurchased), 10),
				row.TotalValue.StringFixed(2),
				strconv.FormatInt(int64(row.CurrentStock), 10),
			})
		}
		return &output.Report{Title: "Material Usage", Generated: now, Data: rows, Tables: []output.Table{table}}, nil

	case "stock":
		rows := reports.StockStatus(snapshot, filter)
		table := output.Table{
			Title:   "Stock Status",
			Headers: []string{"Material", "Stock", "Minimum", "Status", "Last Movement"},
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{
				row.MaterialName,
				strconv.FormatInt(int64(row.CurrentStock), 10),
				strconv.FormatInt(int64(row.MinStock), 10),
				row.Status,
				formatOptionalDate(row.LastMovement),
			})
		}
		return &output.Report{Title: "Stock Status", Generated: now, Data: rows, Tables: []output.Table{table}}, nil

	case "dashboard":
		kpis := dashboard.KPIs(snapshot, filter)
		categories := dashboard.CostByCategory(snapshot, filter)
		top := dashboard.TopConsumedMaterials(snapshot, filter, c.config.TopLimit)

		kpiTable := output.Table{
			Title:   "Dashboard KPIs",
			Headers: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Total Projects", strconv.Itoa(kpis.TotalProjects)},
				{"Active Projects", strconv.Itoa(kpis.ActiveProjects)},
				{"Completed Projects", strconv.Itoa(kpis.CompletedProjects)},
				{"Total Spent", kpis.TotalSpent.StringFixed(2)},
				{"Low Stock Materials", strconv.Itoa(kpis.LowStockMaterials)},
				{"Completed Phases", fmt.Sprintf("%d of %d", kpis.CompletedPhases, kpis.TotalPhases)},
				{"Average Progress", fmt.Sprintf("%d%%", kpis.AverageProgress)},
			},
		}

		categoryTable := output.Table{
			Title:   "Costs by Category",
			Headers: []string{"Category", "Total"},
		}
		for _, row := range categories {
			categoryTable.Rows = append(categoryTable.Rows, []string{row.Category, row.Total.StringFixed(2)})
		}

		topTable := output.Table{
			Title:   "Top Consumed Materials",
			Headers: []string{"Material", "Quantity", "Value"},
		}
		for _, row := range top {
			topTable.Rows = append(topTable.Rows, []string{
				row.MaterialName,
				strconv.FormatInt(int64(row.Quantity), 10),
				row.Value.StringFixed(2),
			})
		}

		payload := struct {
			KPIs       dto.DashboardKPIs            `json:"kpis"`
			Categories []dto.CategoryCostRow        `json:"costsByCategory"`
			Top        []dto.MaterialConsumptionRow `json:"topConsumedMaterials"`
		}{kpis, categories, top}

		return &output.Report{
			Title:     "Dashboard",
			Generated: now,
			Data:      payload,
			Tables:    []output.Table{kpiTable, categoryTable, topTable},
		}, nil
	}

	return nil, fmt.Errorf("unknown report type: %s", c.config.Report)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

// showHelp displays the help message
func (c *ReportCommand) showHelp() {
	fmt.Printf(`Structa - Construction Project Reporting

USAGE:
    structa -report <type>                 # Run on the built-in sample dataset
    structa -data <dir> -report <type>     # Run on a CSV dataset

OPTIONS:
    -data <dir>         Path to a directory of CSV files
    -report <type>      Report type: general, costs, progress, productivity,
                        materials, stock, dashboard (default: general)
    -format <fmt>       Output format: text, json, csv, xlsx (default: text)
    -output <dir>       Output directory for results (optional)
    -project <id>       Restrict the report to one project
    -from <date>        Include records from this date (YYYY-MM-DD)
    -to <date>          Include records up to this date (YYYY-MM-DD)
    -status <status>    Restrict to projects with this status:
                        planned, in-progress, completed
    -top <n>            Rows in the top consumed materials ranking (default: 5)
    -verbose            Enable verbose output
    -help               Show this help message

DATA DIRECTORY STRUCTURE:
    dataset/
    ├── projects.csv        # Required
    ├── materials.csv       # Required
    ├── phases.csv          # Optional
    ├── movements.csv       # Optional
    ├── purchases.csv       # Optional
    └── purchase_items.csv  # Optional

CSV FILE FORMATS:

projects.csv:
    id,name,location,start_date,expected_end,actual_end,owner,status,budget,total_cost
    1,Residencial Alpha,Sao Paulo,2024-01-15,2024-12-15,,Joao Silva,in-progress,2500000,1800000

phases.csv:
    id,name,description,project_id,progress,start_date,end_date,notes
    1,Foundation,Excavation and foundation works,1,100,2024-01-15,2024-02-28,Done

materials.csv:
    id,name,unit,supplier,unit_price,category,stock,min_stock
    1,Cimento CP-II-Z-32,sc,Votorantim Cimentos,28.50,Cement and Mortar,150,50

movements.csv:
    id,material_id,project_id,phase_id,type,quantity,reason,date,performed_by
    1,1,1,1,in,100,Purchase for project,2024-01-10,Joao Silva

purchases.csv:
    id,project_id,supplier,purchase_date,invoice_number,status,delivered_at
    1,1,Votorantim Cimentos,2024-01-15,NF-001234,delivered,2024-01-20

purchase_items.csv:
    id,purchase_id,material_id,quantity,unit_price
    1,1,1,100,28.50

EXAMPLES:
    # Cost report for every project
    structa -report costs

    # Progress for one project as JSON
    structa -data data/ -report progress -project 1 -format json

    # Stock status to a spreadsheet
    structa -data data/ -report stock -format xlsx -output results/

    # Dashboard for a date range
    structa -report dashboard -from 2024-01-01 -to 2024-06-30 -verbose
`)
}
