// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./role.go -destination=../mocks/mock_role_repository.go -package=mocks RoleRepositoryIface
//go:generate mockgen -source=./orgrole.go -destination=../mocks/mock_orgrole_repository.go -package=mocks OrgRoleRepositoryIface
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./approval.go -destination=../mocks/mock_approval_repository.go -package=mocks ApprovalRepositoryIface
//go:generate mockgen -source=./settings.go -destination=../mocks/mock_settings_repository.go -package=mocks SettingsRepositoryIface
//go:generate mockgen -source=./workflow.go -destination=../mocks/mock_workflow_repository.go -package=mocks WorkflowRepositoryIface
