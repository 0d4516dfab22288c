package commands

import (
	"context"
	"errors"
	"fmt"

	"restaurante/internal/dto"
	"restaurante/internal/infra"
	"restaurante/internal/model"
	"restaurante/internal/repository"
	"restaurante/internal/service"
	"restaurante/internal/validation"

	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
	adminNombre   string
)

// crearAdminCmd creates the first Administrador, or resets its password and
// role when the email already exists.
var crearAdminCmd = &cobra.Command{
	Use:   "crear-admin",
	Short: "Crea o actualiza un empleado Administrador",
	Example: `  restoctl crear-admin --email admin.local@gmail.cl --password cambiar123 --nombre "Admin Local"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer infra.CloseDatabase(db)

		ctx := context.Background()
		repo := repository.NewEmpleadoRepository(db)
		svc := service.NewEmpleadoService(repo)

		req := dto.CrearEmpleadoRequest{
			Nombre:   adminNombre,
			Email:    adminEmail,
			Password: adminPassword,
			Rol:      model.RolAdministrador,
		}
		res := validation.CrearEmpleado(req)
		if !res.Ok() {
			return res.Errores
		}

		emp, err := svc.Crear(ctx, res.Valor)
		if errors.Is(err, service.ErrConflicto) {
			existing, findErr := repo.ObtenerPorEmail(ctx, adminEmail)
			if findErr != nil {
				return findErr
			}
			rol := model.RolAdministrador
			emp, err = svc.Actualizar(ctx, existing.ID, dto.ActualizarEmpleadoRequest{
				Nombre:   &adminNombre,
				Password: &adminPassword,
				Rol:      &rol,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "administrador %q actualizado (id %d)\n", emp.Email, emp.EmpleadoID)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "administrador %q creado (id %d)\n", emp.Email, emp.EmpleadoID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crearAdminCmd)

	crearAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Correo (@gmail.cl)")
	crearAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Contraseña (8-26 alfanuméricos)")
	crearAdminCmd.Flags().StringVar(&adminNombre, "nombre", "Administrador", "Nombre (solo letras)")
	_ = crearAdminCmd.MarkFlagRequired("email")
	_ = crearAdminCmd.MarkFlagRequired("password")
}
