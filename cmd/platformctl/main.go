// cmd/platformctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nexasuite/platform/internal/auth"
	"github.com/nexasuite/platform/internal/config"
	"github.com/nexasuite/platform/internal/email"
	"github.com/nexasuite/platform/internal/email/mailer"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/repository"
	"github.com/nexasuite/platform/internal/service"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(escalateCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "platformctl",
	Short: "platformctl manages the authorization and approval platform",
	Long:  `platformctl runs schema migrations, seeds the permission catalog, and operates the escalation scan.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update all platform tables using the model definitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDatabase()

		err := db.AutoMigrate(
			&model.Organization{},
			&model.Company{},
			&model.UserCompany{},
			&model.User{},
			&model.Permission{},
			&model.Role{},
			&model.RolePermission{},
			&model.UserRole{},
			&model.OrganizationRole{},
			&model.RoleModuleAssignment{},
			&model.UserOrganizationRole{},
			&model.OrganizationApprovalSettings{},
			&model.ApprovalRequest{},
			&model.ApprovalHistory{},
			&model.WorkflowTemplate{},
			&model.WorkflowStep{},
			&model.WorkflowInstance{},
			&model.WorkflowStepInstance{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the permission catalog",
	Long:  `Insert the default permission catalog. Existing entries are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDatabase()

		permRepo := repository.NewPermissionRepository(db)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := permRepo.Seed(ctx, model.DefaultCatalog); err != nil {
			log.Fatalf("Failed to seed permission catalog: %v", err)
		}

		fmt.Printf("Seeded %d catalog permissions\n", len(model.DefaultCatalog))
	},
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create an organization and its first admin user",
	Long: `Create a new organization together with an org-admin account that can
then manage roles, users and settings through the API.`,
	Run: func(cmd *cobra.Command, args []string) {
		orgName, _ := cmd.Flags().GetString("org")
		adminEmail, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		if orgName == "" || adminEmail == "" || password == "" {
			log.Fatal("--org, --email and --password are required")
		}

		db := mustOpenDatabase()
		orgRepo := repository.NewOrganizationRepository(db)
		userRepo := repository.NewUserRepository(db)
		hasher := auth.NewPasswordHasher()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		org := &model.Organization{Name: orgName, IsActive: true}
		if err := orgRepo.Create(ctx, org); err != nil {
			log.Fatalf("Failed to create organization: %v", err)
		}

		hash, err := hasher.Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin := &model.User{
			OrganizationID: org.ID,
			Email:          adminEmail,
			FirstName:      firstName,
			LastName:       lastName,
			PasswordHash:   hash,
			Tier:           model.TierOrgAdmin,
			IsActive:       true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}

		fmt.Printf("Created organization %s (%s) with admin %s\n", org.Name, org.ID, admin.Email)
	},
}

var escalateCmd = &cobra.Command{
	Use:   "escalate",
	Short: "Run the overdue-approval escalation scan",
	Long: `Scan for approvals sitting past their deadline and escalate them per each
organization's settings. With --watch the scan repeats on a schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		watch, _ := cmd.Flags().GetBool("watch")

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)

		cfg := config.Load()
		db := mustOpenDatabase()

		userRepo := repository.NewUserRepository(db)
		roleRepo := repository.NewRoleRepository(db)
		orgRoleRepo := repository.NewOrgRoleRepository(db)
		companyRepo := repository.NewCompanyRepository(db)
		settingsRepo := repository.NewSettingsRepository(db)
		approvalRepo := repository.NewApprovalRepository(db)

		// Escalation targets are notified the same way the API notifies
		// approvers; without a transport the scan still runs silently.
		var notifier service.Notifier = mailer.NoopNotifier{}
		if cfg.Sendgrid.APIKey != "" || cfg.SMTP.Host != "" {
			emailService, err := email.NewService(cfg)
			if err != nil {
				log.Fatalf("Failed to initialize email service: %v", err)
			}
			notifier = mailer.NewApprovalNotifier(emailService, userRepo, cfg.BaseURL, logger)
		}

		authzService := service.NewAuthorizationService(userRepo, roleRepo, orgRoleRepo, companyRepo)
		approvalService := service.NewApprovalService(approvalRepo, settingsRepo, userRepo, authzService, notifier)

		scan := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			count, err := approvalService.EscalateOverdue(ctx, time.Now().UTC(), cfg.Escalation.BatchSize)
			if err != nil {
				logger.Error("escalation scan failed", "error", err)
				return
			}
			logger.Info("escalation scan completed", "escalated", count)
		}

		if !watch {
			scan()
			return
		}

		c := cron.New()
		spec := fmt.Sprintf("@every %s", cfg.Escalation.ScanInterval)
		if _, err := c.AddFunc(spec, scan); err != nil {
			log.Fatalf("Failed to schedule escalation scan: %v", err)
		}
		logger.Info("escalation scan scheduled", "interval", cfg.Escalation.ScanInterval.String())
		c.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("platformctl v1.0.0")
	},
}

func mustOpenDatabase() *gorm.DB {
	cfg := config.Load()
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	escalateCmd.Flags().Bool("watch", false, "Keep running and scan on the configured interval")
	bootstrapCmd.Flags().String("org", "", "Organization name")
	bootstrapCmd.Flags().String("email", "", "Admin email address")
	bootstrapCmd.Flags().String("password", "", "Admin password")
	bootstrapCmd.Flags().String("first-name", "", "Admin first name")
	bootstrapCmd.Flags().String("last-name", "", "Admin last name")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
