package policy

// Dependent is a child table pointing at a parent row through Column.
type Dependent struct {
	Table  string
	Column string
}

// DeleteRule describes what deleting one row of Table means for its children.
//
// Restricted children block the delete while any of them reference the row.
// Cascaded children are removed first, in the same transaction as the parent.
type DeleteRule struct {
	Table      string
	Key        string
	Restricted []Dependent
	Cascaded   []Dependent
}

var (
	ClientTypeDelete = DeleteRule{
		Table: "client_types",
		Key:   "id_type_client",
		Restricted: []Dependent{
			{Table: "clients", Column: "type_client"},
			{Table: "executors", Column: "type_executor"},
		},
	}

	ClientDelete = DeleteRule{
		Table:      "clients",
		Key:        "id_client",
		Restricted: []Dependent{{Table: "deals", Column: "id_client"}},
	}

	ExecutorDelete = DeleteRule{
		Table:      "executors",
		Key:        "id_executor",
		Restricted: []Dependent{{Table: "deals", Column: "id_executor"}},
	}

	SampleContractDelete = DeleteRule{
		Table:      "sample_contracts",
		Key:        "id_sample_contract",
		Restricted: []Dependent{{Table: "services", Column: "id_sample_contract"}},
		Cascaded:   []Dependent{{Table: "sample_attaches", Column: "id_sample_contract"}},
	}

	SampleAttachDelete = DeleteRule{
		Table: "sample_attaches",
		Key:   "id_sample_attach",
	}

	ServiceDelete = DeleteRule{
		Table:      "services",
		Key:        "id_service",
		Restricted: []Dependent{{Table: "attachments", Column: "id_service"}},
	}

	DealDelete = DeleteRule{
		Table:    "deals",
		Key:      "id_deal",
		Cascaded: []Dependent{{Table: "attachments", Column: "id_deal"}},
	}

	AttachmentDelete = DeleteRule{
		Table: "attachments",
		Key:   "id_attachment",
	}
)
