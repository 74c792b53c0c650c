// Package wire provides dependency injection for the time clock.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"

	cliadapter "github.com/example/timeclock/internal/adapters/cli"
	"github.com/example/timeclock/internal/adapters/excel"
	"github.com/example/timeclock/internal/adapters/jsonfile"
	"github.com/example/timeclock/internal/adapters/memory"
	"github.com/example/timeclock/internal/adapters/sqlite"
	"github.com/example/timeclock/internal/app"
	"github.com/example/timeclock/internal/config"
	"github.com/example/timeclock/internal/db"
	"github.com/example/timeclock/internal/ports/primary"
)

var (
	workDir         = "."
	cfg             *config.Config
	punchService    primary.PunchService
	employeeService primary.EmployeeService
	reportService   primary.ReportService
	journalService  primary.JournalService
	once            sync.Once
)

// Configure sets the working directory used to resolve the config file,
// the data file and the journal. It must be called before any accessor.
func Configure(dir string) {
	if dir != "" {
		workDir = dir
	}
}

// Dir returns the configured working directory.
func Dir() string {
	return workDir
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// PunchService returns the singleton PunchService instance.
func PunchService() primary.PunchService {
	once.Do(initServices)
	return punchService
}

// EmployeeService returns the singleton EmployeeService instance.
func EmployeeService() primary.EmployeeService {
	once.Do(initServices)
	return employeeService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// JournalService returns the singleton JournalService instance.
func JournalService() primary.JournalService {
	once.Do(initServices)
	return journalService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.LoadConfig(workDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	// The punch journal is an audit trail beside the JSON record file.
	database, err := db.Open(config.Resolve(workDir, cfg.JournalDB))
	if err != nil {
		log.Fatalf("failed to initialize journal database: %v", err)
	}

	// Load the record file once; a corrupt file is never overwritten.
	gateway := jsonfile.NewGateway(config.Resolve(workDir, cfg.DataFile))
	snapshot, err := gateway.Load(context.Background())
	if err != nil {
		log.Fatalf("cannot start with data file %s: %v", gateway.Path(), err)
	}

	store := memory.NewRecordStore(snapshot)
	journalRepo := sqlite.NewJournalRepository(database)
	ledger := app.NewLedger(store, gateway, journalRepo)

	punchService = app.NewPunchService(ledger)
	employeeService = app.NewEmployeeService(ledger)
	reportService = app.NewReportService(ledger, excel.NewShiftExporter())
	journalService = app.NewJournalService(journalRepo)
}

// SessionAdapter returns a new interactive session on stdin and stdout.
func SessionAdapter() *cliadapter.SessionAdapter {
	return SessionAdapterWithIO(os.Stdin, os.Stdout)
}

// SessionAdapterWithIO returns a new interactive session on the given streams.
// This variant allows testing or alternate terminals.
func SessionAdapterWithIO(in io.Reader, out io.Writer) *cliadapter.SessionAdapter {
	once.Do(initServices)
	return cliadapter.NewSessionAdapter(cliadapter.Services{
		Punch:    punchService,
		Employee: employeeService,
		Report:   reportService,
		Journal:  journalService,
	}, in, out, cliadapter.Layouts{Date: cfg.DateLayout, Time: cfg.TimeLayout})
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(reportService, out)
}

// JournalAdapter returns a new JournalAdapter writing to stdout.
func JournalAdapter() *cliadapter.JournalAdapter {
	once.Do(initServices)
	return cliadapter.NewJournalAdapter(journalService, os.Stdout)
}

// PunchAdapter returns a new PunchAdapter writing to stdout.
func PunchAdapter() *cliadapter.PunchAdapter {
	once.Do(initServices)
	return cliadapter.NewPunchAdapter(punchService, os.Stdout)
}

// EmployeeAdapter returns a new EmployeeAdapter writing to stdout.
func EmployeeAdapter() *cliadapter.EmployeeAdapter {
	once.Do(initServices)
	return cliadapter.NewEmployeeAdapter(employeeService, os.Stdout)
}
