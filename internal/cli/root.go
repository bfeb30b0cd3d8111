package cli

import (
	"fmt"

	"github.com/daan/miniblog/internal/api/session"
	"github.com/daan/miniblog/internal/core/repository"
	"github.com/daan/miniblog/internal/core/service"
	"github.com/daan/miniblog/internal/infrastructure/sqlite"
	"github.com/daan/miniblog/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "miniblog",
	Short: "Miniblog - a minimal blogging backend",
	Long: `Miniblog is a small JSON-over-HTTP blogging backend.

It provides:
- User signup and login with cookie-based sessions
- Bearer tokens for non-browser clients
- Create, read, update and delete operations on blog posts
- A CLI for user administration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/miniblog/config.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	// Initialize database
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.SecretKey, cfg.JWTAlgorithm)
	postService := service.NewPostService(postRepo)
	sessions := session.NewManager(cfg.SecretKey, cfg.UseSecureCookies())

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		AuthService: authService,
		PostService: postService,
		Sessions:    sessions,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	AuthService *service.AuthService
	PostService *service.PostService
	Sessions    *session.Manager
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
