package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "yatube/internal/adapters/database"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/config"
	groupapp "yatube/internal/core/group/service"
	pagecacheapp "yatube/internal/core/pagecache/service"
	userapp "yatube/internal/core/user/service"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Yatube maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newCacheCmd(), newGroupCmd(), newUserCmd())
	return root
}

// openDB connects the shared DB handle; the admin commands only need the
// database part of the configuration.
func openDB() error {
	cfg := config.Load()
	if cfg.DBDSN == "" {
		return errors.New("DB_DSN is not set")
	}
	db, err := config.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	config.DB = db
	return nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := openDB(); err != nil {
				return err
			}
			if err := config.Migrate(config.DB); err != nil {
				return err
			}
			config.Logger.Info("Database migrations completed")
			return nil
		},
	}
}

func newCacheCmd() *cobra.Command {
	cache := &cobra.Command{Use: "cache", Short: "Manage the page cache"}
	cache.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cfg.RedisAddr == "" {
				return errors.New("REDIS_ADDR is not set")
			}
			config.InitRedis(cfg)
			defer config.RedisClient.Close()

			svc := pagecacheapp.NewPageCacheService(redisadapter.NewPageCacheRedis(config.RedisClient))
			if err := svc.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "page cache cleared")
			return nil
		},
	})
	return cache
}

func newGroupCmd() *cobra.Command {
	group := &cobra.Command{Use: "group", Short: "Manage groups"}

	var description string
	create := &cobra.Command{
		Use:   "create <title> <slug>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := groupService()
			if err != nil {
				return err
			}
			g, err := svc.CreateGroup(cmd.Context(), args[0], args[1], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created group %s (%s)\n", g.Slug, g.ID)
			return nil
		},
	}
	create.Flags().StringVarP(&description, "description", "d", "", "group description")

	list := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := groupService()
			if err != nil {
				return err
			}
			groups, err := svc.ListGroups(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", g.Slug, g.Title)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a group, keeping its posts without a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := groupService()
			if err != nil {
				return err
			}
			return svc.DeleteGroup(cmd.Context(), args[0])
		},
	}

	group.AddCommand(create, list, del)
	return group
}

func newUserCmd() *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Manage users"}
	user.AddCommand(&cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user with their posts, comments and follows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openDB(); err != nil {
				return err
			}
			// tokens are never issued here, so the signing key is unused
			svc := userapp.NewUserService(dbadapter.NewUserRepositoryDatabase(config.DB), nil, 0)
			if err := svc.DeleteUser(cmd.Context(), args[0]); err != nil {
				config.Logger.Error("User delete failed", zap.String("username", args[0]), zap.Error(err))
				return err
			}
			return nil
		},
	})
	return user
}

func groupService() (*groupapp.GroupService, error) {
	if err := openDB(); err != nil {
		return nil, err
	}
	return groupapp.NewGroupService(dbadapter.NewGroupRepositoryDatabase(config.DB)), nil
}
