package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/repository"
	"github.com/yukikurage/project-showcase-api/internal/services"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

var errNoAdmin = errors.New("no administrator exists, run create-admin first")

// createAdmin creates an administrator account
func (cli *commandLine) createAdmin(email, name, pwd string) error {
	user, err := cli.svc.Auth.CreateAdmin(context.Background(), services.CreateAdminInput{
		Email:    email,
		Password: pwd,
		Name:     name,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "admin %s created (id %s)\n", user.Email, user.ID)
	return nil
}

// addStudent registers a student on behalf of the first administrator.
// The batch is auto-created when it does not exist yet.
func (cli *commandLine) addStudent(email, name, batchID, batch, pwd string) error {
	ctx := context.Background()

	admin, err := cli.firstAdmin(ctx)
	if err != nil {
		return err
	}

	generated := pwd == ""
	if generated {
		if pwd, err = utils.GenerateTemporaryPassword(); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
	}

	user, err := cli.svc.Auth.RegisterStudent(ctx, services.RegisterStudentInput{
		Email:       email,
		Password:    pwd,
		Name:        name,
		BatchID:     batchID,
		Batch:       batch,
		RegistrarID: admin.ID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "student %s added to batch %s (id %s)\n", user.Email, user.OwnBatchID(), user.ID)
	if generated {
		fmt.Fprintf(cli.out, "temporary password: %s\n", pwd)
	}
	return nil
}

// resetPassword sets a new password for the user with email
func (cli *commandLine) resetPassword(email, pwd string) error {
	user, err := cli.svc.Auth.ResetPassword(context.Background(), email, pwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "password of %s reset\n", user.Email)
	return nil
}

func (cli *commandLine) firstAdmin(ctx context.Context) (*models.User, error) {
	admins, _, err := cli.users.List(ctx, repository.UserFilter{
		Role:       models.RoleAdmin,
		Pagination: utils.NewPaginationParams(1, 1, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find administrator: %w", err)
	}
	if len(admins) == 0 {
		return nil, errNoAdmin
	}
	return &admins[0], nil
}
