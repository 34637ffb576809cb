package main

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/application"
)

func group(name, usage string, commands []*cli.Command) *cli.Command {
	return &cli.Command{Name: name, Usage: usage, Commands: commands}
}

func organizationsCommand(a *app) *cli.Command {
	r := resource[application.OrganizationDTO, application.OrganizationQuery, int]{
		name: "organizations",
		key:  intKey,
		columns: []column[application.OrganizationDTO]{
			{"ID", func(o application.OrganizationDTO) string { return strconv.Itoa(o.ID) }},
			{"NAME", func(o application.OrganizationDTO) string { return o.Name }},
			{"ACTIVE", func(o application.OrganizationDTO) string { return strconv.FormatBool(o.IsActive) }},
			{"SETUP_COMPLETE", func(o application.OrganizationDTO) string { return strconv.FormatBool(o.IsSetupComplete) }},
			{"DELETED", func(o application.OrganizationDTO) string { return strconv.FormatBool(o.IsDeleted) }},
			{"CREATED_AT", func(o application.OrganizationDTO) string { return formatTime(&o.CreatedAt) }},
		},
	}
	return group("organizations", "Organization commands", crudCommands(r,
		func() crudService[application.OrganizationDTO, application.CreateOrganization, application.UpdateOrganization, application.OrganizationQuery, int] {
			return a.services.organizations
		}))
}

func floorsCommand(a *app) *cli.Command {
	r := resource[application.FloorDTO, application.FloorQuery, string]{
		name: "floors",
		key:  stringKey,
		columns: []column[application.FloorDTO]{
			{"FLOOR_ID", func(f application.FloorDTO) string { return f.FloorID }},
			{"DESCRIPTION", func(f application.FloorDTO) string { return formatText(f.Description) }},
			{"DESCRIPTION_EN", func(f application.FloorDTO) string { return formatText(f.DescriptionEnglish) }},
			{"SEQUENCE", func(f application.FloorDTO) string { return formatInt(f.SequenceNo) }},
			{"MAX_FLOOR", func(f application.FloorDTO) string { return formatInt(f.MaxFloorNo) }},
		},
	}
	return group("floors", "Floor master commands", crudCommands(r,
		func() crudService[application.FloorDTO, application.CreateFloor, application.UpdateFloor, application.FloorQuery, string] {
			return a.services.floors
		}))
}

func subFloorsCommand(a *app) *cli.Command {
	r := resource[application.SubFloorDTO, application.SubFloorQuery, string]{
		name: "sub floors",
		key:  stringKey,
		columns: []column[application.SubFloorDTO]{
			{"SUB_FLOOR_ID", func(s application.SubFloorDTO) string { return s.SubFloorID }},
			{"DESCRIPTION", func(s application.SubFloorDTO) string { return formatText(s.SubFloorDescription) }},
			{"DESCRIPTION_EN", func(s application.SubFloorDTO) string { return formatText(s.SubFloorDescriptionEnglish) }},
			{"PERCENTAGE", func(s application.SubFloorDTO) string { return formatMaybeFloat(s.SubFloorPercentage) }},
		},
	}
	return group("sub-floors", "Sub floor master commands", crudCommands(r,
		func() crudService[application.SubFloorDTO, application.CreateSubFloor, application.UpdateSubFloor, application.SubFloorQuery, string] {
			return a.services.subFloors
		}))
}

func constructionTypesCommand(a *app) *cli.Command {
	r := resource[application.ConstructionTypeDTO, application.ConstructionTypeQuery, string]{
		name: "construction types",
		key:  stringKey,
		columns: []column[application.ConstructionTypeDTO]{
			{"CONSTRUCTION_ID", func(c application.ConstructionTypeDTO) string { return c.ConstructionID }},
			{"DESCRIPTION", func(c application.ConstructionTypeDTO) string { return c.Description }},
			{"GROUP_ID", func(c application.ConstructionTypeDTO) string { return c.GroupID }},
			{"SHORTCUT", func(c application.ConstructionTypeDTO) string { return c.KeyboardShortCutKey }},
			{"SEQUENCE", func(c application.ConstructionTypeDTO) string { return formatInt(c.KeyWiseSequence) }},
		},
	}
	commands := crudCommands(r,
		func() crudService[application.ConstructionTypeDTO, application.CreateConstructionType, application.UpdateConstructionType, application.ConstructionTypeQuery, string] {
			return a.services.constructionTypes
		})

	hierarchy := &cli.Command{
		Name:  "hierarchy",
		Usage: "List construction types whose group contains --group",
		Flags: append(listFlags(), &cli.StringFlag{Name: "group", Required: true, Usage: "group id fragment"}),
		Action: func(ctx context.Context, c *cli.Command) error {
			svc := a.services.constructionTypes
			q, err := buildQuery(c, svc.Descriptor())
			if err != nil {
				return err
			}
			page, err := svc.GetAllWithHierarchy(ctx, q, c.String("group"))
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(page)
			}
			printPage(r.columns, page)
			return nil
		},
	}
	return group("construction-types", "Construction type master commands", append(commands, hierarchy))
}

func zonesCommand(a *app) *cli.Command {
	r := resource[application.ZoneDTO, application.ZoneQuery, int]{
		name: "zones",
		key:  intKey,
		columns: []column[application.ZoneDTO]{
			{"ZONE_ID", func(z application.ZoneDTO) string { return strconv.Itoa(z.ZoneID) }},
			{"NAME", func(z application.ZoneDTO) string { return z.ZoneName }},
			{"CODE", func(z application.ZoneDTO) string { return z.ZoneCode }},
			{"ACTIVE", func(z application.ZoneDTO) string { return strconv.FormatBool(z.IsActive) }},
		},
	}
	return group("zones", "Zone master commands", crudCommands(r,
		func() crudService[application.ZoneDTO, application.CreateZone, application.UpdateZone, application.ZoneQuery, int] {
			return a.services.zones
		}))
}

func wardsCommand(a *app) *cli.Command {
	r := resource[application.WardDTO, application.WardQuery, int]{
		name: "wards",
		key:  intKey,
		columns: []column[application.WardDTO]{
			{"WARD_ID", func(w application.WardDTO) string { return strconv.Itoa(w.WardID) }},
			{"NAME", func(w application.WardDTO) string { return w.WardName }},
			{"CODE", func(w application.WardDTO) string { return w.WardCode }},
			{"ZONE_ID", func(w application.WardDTO) string { return strconv.Itoa(w.ZoneID) }},
			{"ZONE", func(w application.WardDTO) string { return formatText(w.ZoneName) }},
			{"ACTIVE", func(w application.WardDTO) string { return strconv.FormatBool(w.IsActive) }},
		},
	}
	return group("wards", "Ward master commands", crudCommands(r,
		func() crudService[application.WardDTO, application.CreateWard, application.UpdateWard, application.WardQuery, int] {
			return a.services.wards
		}))
}

func pipeSizesCommand(a *app) *cli.Command {
	r := resource[application.PipeSizeDTO, application.PipeSizeQuery, int]{
		name: "pipe sizes",
		key:  intKey,
		columns: []column[application.PipeSizeDTO]{
			{"PIPE_SIZE_ID", func(p application.PipeSizeDTO) string { return strconv.Itoa(p.PipeSizeID) }},
			{"NAME", func(p application.PipeSizeDTO) string { return p.SizeName }},
			{"DIAMETER_MM", func(p application.PipeSizeDTO) string { return formatFloat(p.DiameterMM) }},
			{"ACTIVE", func(p application.PipeSizeDTO) string { return strconv.FormatBool(p.IsActive) }},
		},
	}
	return group("pipe-sizes", "Pipe size master commands", crudCommands(r,
		func() crudService[application.PipeSizeDTO, application.CreatePipeSize, application.UpdatePipeSize, application.PipeSizeQuery, int] {
			return a.services.pipeSizes
		}))
}

func connectionTypesCommand(a *app) *cli.Command {
	r := resource[application.ConnectionTypeDTO, application.ConnectionTypeQuery, int]{
		name: "connection types",
		key:  intKey,
		columns: []column[application.ConnectionTypeDTO]{
			{"ID", func(c application.ConnectionTypeDTO) string { return strconv.Itoa(c.ConnectionTypeID) }},
			{"NAME", func(c application.ConnectionTypeDTO) string { return c.ConnectionTypeName }},
			{"DESCRIPTION", func(c application.ConnectionTypeDTO) string { return formatText(c.Description) }},
			{"ACTIVE", func(c application.ConnectionTypeDTO) string { return strconv.FormatBool(c.IsActive) }},
		},
	}
	return group("connection-types", "Connection type master commands", crudCommands(r,
		func() crudService[application.ConnectionTypeDTO, application.CreateConnectionType, application.UpdateConnectionType, application.ConnectionTypeQuery, int] {
			return a.services.connectionTypes
		}))
}

func connectionCategoriesCommand(a *app) *cli.Command {
	r := resource[application.ConnectionCategoryDTO, application.ConnectionCategoryQuery, int]{
		name: "connection categories",
		key:  intKey,
		columns: []column[application.ConnectionCategoryDTO]{
			{"ID", func(c application.ConnectionCategoryDTO) string { return strconv.Itoa(c.CategoryID) }},
			{"NAME", func(c application.ConnectionCategoryDTO) string { return c.CategoryName }},
			{"DESCRIPTION", func(c application.ConnectionCategoryDTO) string { return formatText(c.Description) }},
			{"ACTIVE", func(c application.ConnectionCategoryDTO) string { return strconv.FormatBool(c.IsActive) }},
		},
	}
	return group("connection-categories", "Connection category master commands", crudCommands(r,
		func() crudService[application.ConnectionCategoryDTO, application.CreateConnectionCategory, application.UpdateConnectionCategory, application.ConnectionCategoryQuery, int] {
			return a.services.connectionCategories
		}))
}

func ratesCommand(a *app) *cli.Command {
	r := resource[application.RateDTO, application.RateQuery, int]{
		name: "rates",
		key:  intKey,
		columns: []column[application.RateDTO]{
			{"RATE_ID", func(rt application.RateDTO) string { return strconv.Itoa(rt.RateID) }},
			{"YEAR", func(rt application.RateDTO) string { return strconv.Itoa(rt.Year) }},
			{"ZONE", func(rt application.RateDTO) string { return formatText(rt.ZoneName) }},
			{"WARD", func(rt application.RateDTO) string { return formatText(rt.WardName) }},
			{"TAP_SIZE", func(rt application.RateDTO) string { return formatText(rt.TapSize) }},
			{"TYPE", func(rt application.RateDTO) string { return formatText(rt.ConnectionTypeName) }},
			{"CATEGORY", func(rt application.RateDTO) string { return formatText(rt.CategoryName) }},
			{"RATE", func(rt application.RateDTO) string { return formatFloat(rt.Rate) }},
			{"MIN_CHARGE", func(rt application.RateDTO) string { return formatFloat(rt.MinimumCharge) }},
		},
	}
	return group("rates", "Water rate commands", crudCommands(r,
		func() crudService[application.RateDTO, application.CreateRate, application.UpdateRate, application.RateQuery, int] {
			return a.services.rates
		}))
}

func consumersCommand(a *app) *cli.Command {
	r := resource[application.ConsumerAccountDTO, application.ConsumerQuery, int]{
		name: "consumers",
		key:  intKey,
		columns: []column[application.ConsumerAccountDTO]{
			{"CONSUMER_ID", func(c application.ConsumerAccountDTO) string { return strconv.Itoa(c.ConsumerID) }},
			{"NUMBER", func(c application.ConsumerAccountDTO) string { return c.ConsumerNumber }},
			{"NAME", func(c application.ConsumerAccountDTO) string { return c.ConsumerName }},
			{"WARD", func(c application.ConsumerAccountDTO) string { return formatText(c.WardNo) }},
			{"PROPERTY", func(c application.ConsumerAccountDTO) string { return formatText(c.PropertyNumber) }},
			{"PARTITION", func(c application.ConsumerAccountDTO) string { return formatText(c.PartitionNumber) }},
			{"MOBILE", func(c application.ConsumerAccountDTO) string { return formatText(c.MobileNumber) }},
			{"TYPE", func(c application.ConsumerAccountDTO) string { return formatText(c.ConnectionTypeName) }},
			{"PIPE_SIZE", func(c application.ConsumerAccountDTO) string { return formatText(c.PipeSize) }},
		},
	}
	commands := readCommands(r, func() readService[application.ConsumerAccountDTO, application.ConsumerQuery, int] {
		return a.services.consumers
	})

	find := &cli.Command{
		Name:      "find",
		Usage:     "Resolve an active consumer from a number, mobile, name, email or ward-property[-partition]",
		ArgsUsage: "<value>",
		Flags:     []cli.Flag{jsonFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			value := c.Args().First()
			found, err := a.services.consumers.FindConsumer(ctx, value)
			if err != nil {
				return err
			}
			if found == nil {
				return notFound("consumer", value)
			}
			return printOne(c, r.columns, *found)
		},
	}
	return group("consumers", "Consumer account lookups (read only)", append(commands, find))
}
