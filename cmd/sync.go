package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"storage-console/core/config"
	"storage-console/core/database"
	"storage-console/core/logger"
	"storage-console/core/storage"
	"storage-console/feature/vdisk"
	"storage-console/feature/vpool"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncVPools   bool
	syncVDisks   bool
	showOrphans  bool
	purgeOrphans bool
	yesConfirm   bool
)

// syncCmd performs a one-shot view sync and prints what changed.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the console views with the platform once and report",
	Long: `Sync the vpool and vdisk views with the platform database and storage
backend once, without starting the HTTP server.

Examples:
  # Sync everything
  sync

  # Sync only vpools
  sync --vpools

  # Sync vdisks and list orphan volume objects
  sync --vdisks --orphans

  # Delete orphan volume objects (with interactive confirmation)
  sync --vdisks --purge

  # Delete orphans with auto-confirm (non-interactive)
  sync --vdisks --purge --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncVPools, "vpools", false, "Sync only the vpool view")
	syncCmd.Flags().BoolVar(&syncVDisks, "vdisks", false, "Sync only the vdisk view")
	syncCmd.Flags().BoolVar(&showOrphans, "orphans", false, "List orphan volume objects after the vdisk sync")
	syncCmd.Flags().BoolVar(&purgeOrphans, "purge", false, "Delete orphan volume objects from storage")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// No flag means both views.
	all := !syncVPools && !syncVDisks

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	if all || syncVPools {
		svc := vpool.NewService(db, l, 0)
		stats, err := svc.Refresh(ctx)
		if err != nil {
			return fmt.Errorf("failed to sync vpools: %w", err)
		}
		l.Info("VPool view synced",
			zap.Int("added", stats.Added),
			zap.Int("removed", stats.Removed),
			zap.Int("merged", stats.Merged),
		)
	}

	if all || syncVDisks {
		svc := vdisk.NewService(db, client, cfg.Storage.Bucket, l, 0)
		stats, err := svc.Refresh(ctx)
		if err != nil {
			return fmt.Errorf("failed to sync vdisks: %w", err)
		}
		l.Info("VDisk view synced",
			zap.Int("added", stats.Added),
			zap.Int("removed", stats.Removed),
			zap.Int("merged", stats.Merged),
		)

		if showOrphans || purgeOrphans {
			orphans, err := svc.Orphans(ctx)
			if err != nil {
				return fmt.Errorf("failed to scan orphans: %w", err)
			}
			if len(orphans) == 0 {
				l.Info("No orphan volume objects")
				return nil
			}
			for _, name := range orphans {
				l.Warn("Orphan volume object", zap.String("devicename", name))
			}

			if purgeOrphans {
				if !confirmDestructiveAction() {
					l.Warn("Purge cancelled by user. No changes were made.")
					return nil
				}
				purged, err := svc.PurgeOrphans(ctx)
				if err != nil {
					return fmt.Errorf("failed to purge orphans: %w", err)
				}
				l.Info("Orphan purge complete", zap.Int("count", len(purged)))
			}
		}
	}

	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
