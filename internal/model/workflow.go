// internal/model/workflow.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkflowTemplate is an ordered, optionally parallel-grouped step plan. An
// instance is a running copy bound to one entity.
type WorkflowTemplate struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wft_org_name" json:"organization_id"`
	Name                   string    `gorm:"type:text;not null;uniqueIndex:idx_wft_org_name" json:"name"`
	Description            string    `gorm:"type:text" json:"description"`
	EntityType             string    `gorm:"type:text;not null" json:"entity_type"`
	AllowParallelExecution bool      `gorm:"not null;default:false" json:"allow_parallel_execution"`
	IsActive               bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`

	Steps []WorkflowStep `gorm:"foreignKey:TemplateID" json:"steps,omitempty"`
}

// WorkflowStep is one ordered step of a template. Steps sharing a non-zero
// ParallelGroup may run concurrently when the template allows it.
type WorkflowStep struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TemplateID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wfs_template_order" json:"template_id"`
	StepOrder     int       `gorm:"not null;uniqueIndex:idx_wfs_template_order" json:"step_order"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	ApproverID    *uuid.UUID `gorm:"type:uuid" json:"approver_id,omitempty"`
	ParallelGroup int       `gorm:"not null;default:0" json:"parallel_group"`
	CreatedAt     time.Time `json:"created_at"`
}

// WorkflowInstanceStatus tracks the run state of one instance.
type WorkflowInstanceStatus string

const (
	WorkflowRunning   WorkflowInstanceStatus = "running"
	WorkflowPaused    WorkflowInstanceStatus = "paused"
	WorkflowCancelled WorkflowInstanceStatus = "cancelled"
	WorkflowApproved  WorkflowInstanceStatus = "approved"
	WorkflowRejected  WorkflowInstanceStatus = "rejected"
)

// WorkflowInstance is a template run bound to a single entity. The parallel
// flag is copied from the template at start so a later template edit never
// changes the gating of an in-flight run.
type WorkflowInstance struct {
	ID                     uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID         uuid.UUID              `gorm:"type:uuid;not null;index" json:"organization_id"`
	TemplateID             uuid.UUID              `gorm:"type:uuid;not null;index" json:"template_id"`
	EntityType             string                 `gorm:"type:text;not null;index:idx_wfi_entity" json:"entity_type"`
	EntityID               uuid.UUID              `gorm:"type:uuid;not null;index:idx_wfi_entity" json:"entity_id"`
	AllowParallelExecution bool                   `gorm:"not null;default:false" json:"allow_parallel_execution"`
	Status                 WorkflowInstanceStatus `gorm:"type:text;not null;default:'running'" json:"status"`
	CurrentStep    int                    `gorm:"not null;default:1" json:"current_step"`
	CompletedSteps int                    `gorm:"not null;default:0" json:"completed_steps"`
	TotalSteps     int                    `gorm:"not null" json:"total_steps"`
	StartedByID    uuid.UUID              `gorm:"type:uuid;not null" json:"started_by_id"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`

	StepInstances []WorkflowStepInstance `gorm:"foreignKey:InstanceID" json:"step_instances,omitempty"`
}

// StepStatus mirrors the approval shape, scoped to a single step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepApproved  StepStatus = "approved"
	StepRejected  StepStatus = "rejected"
	StepEscalated StepStatus = "escalated"
	StepCancelled StepStatus = "cancelled"
)

// Terminal reports whether the step admits no further action.
func (s StepStatus) Terminal() bool {
	return s == StepApproved || s == StepRejected || s == StepCancelled
}

// WorkflowStepInstance is the running copy of one template step.
type WorkflowStepInstance struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstanceID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"instance_id"`
	StepID        uuid.UUID  `gorm:"type:uuid;not null" json:"step_id"`
	StepOrder     int        `gorm:"not null" json:"step_order"`
	ParallelGroup int        `gorm:"not null;default:0" json:"parallel_group"`
	Status        StepStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	ApproverID    *uuid.UUID `gorm:"type:uuid" json:"approver_id,omitempty"`
	ActedByID     *uuid.UUID `gorm:"type:uuid" json:"acted_by_id,omitempty"`
	ActedAt       *time.Time `json:"acted_at,omitempty"`
	Comment       string     `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
