package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"e-presensi-backend/config"
	"e-presensi-backend/internal/database"
	"e-presensi-backend/internal/repository"
	"e-presensi-backend/internal/usecase"

	"github.com/spf13/cobra"
)

type opener func(cfg config.Config) (repository.Repositories, func() error, error)

// app berisi dependensi yang dibuka sekali per perintah.
type app struct {
	cfg     config.Config
	repos   repository.Repositories
	clock   usecase.Clock
	closeDB func() error
}

func newRootCmd(load func() config.Config, open opener, now func() time.Time) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "presensictl",
		Short:         "Perintah administrasi e-presensi",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = load()
			repos, closeDB, err := open(a.cfg)
			if err != nil {
				return err
			}
			a.repos, a.closeDB = repos, closeDB
			a.clock = usecase.NewClock(now, a.cfg.Location())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeDB != nil {
				return a.closeDB()
			}
			return nil
		},
	}

	root.AddCommand(
		repairCmd(a),
		assignRolesCmd(a),
		exportCmd(a),
		healthCmd(a),
		pruneTokensCmd(a),
		seedCmd(a),
	)
	return root
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) auth() *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(a.repos, a.cfg.JWTSecret, a.cfg.JWTTTL(), a.clock)
}

func repairCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Lengkapi profil dan role untuk semua user",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := usecase.NewRepairUsecase(a.repos.Attendance, a.repos.Profiles, a.repos.Roles).Repair()
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func assignRolesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign-roles",
		Short: "Beri role user ke profil yang belum punya role",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := usecase.NewRepairUsecase(a.repos.Attendance, a.repos.Profiles, a.repos.Roles).AssignMissingRoles()
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func exportCmd(a *app) *cobra.Command {
	var periode, tahun, bulan, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Unduh rekap presensi dalam format Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := usecase.NewExportUsecase(a.repos.Attendance, a.repos.Profiles, a.clock).Export(periode, tahun, bulan)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, file.Filename)
			if err := os.WriteFile(path, file.Content, 0o644); err != nil {
				return fmt.Errorf("gagal menulis %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s (%d user, %d record)\n", path, file.Users, file.Records)
			return nil
		},
	}
	cmd.Flags().StringVar(&periode, "periode", "", "periode YYYY-MM")
	cmd.Flags().StringVar(&tahun, "tahun", "", "tahun, dipakai jika --periode kosong")
	cmd.Flags().StringVar(&bulan, "bulan", "all", "bulan 1-12 atau all")
	cmd.Flags().StringVar(&outDir, "out", ".", "folder tujuan")
	return cmd
}

func healthCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Periksa kesehatan sistem dan integritas presensi",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewHealthUsecase(a.repos, a.clock)
			attendance, err := uc.AttendanceIntegrity(date)
			if err != nil {
				return err
			}
			system := uc.System()
			if err := printJSON(cmd, map[string]interface{}{"system": system, "attendance": attendance}); err != nil {
				return err
			}
			if !system.IsValid || !attendance.IsValid {
				return fmt.Errorf("pemeriksaan menemukan error")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "tanggal", "", "tanggal YYYY-MM-DD, default hari ini")
	return cmd
}

func pruneTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prune-tokens",
		Short: "Hapus catatan token logout yang sudah kadaluwarsa",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.auth().PruneRevoked()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d token dihapus\n", n)
			return nil
		},
	}
}

func seedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Buat akun admin pertama dari SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := database.SeedAll(a.cfg, a.repos, a.auth())
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}
