package main

import (
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/adapters/db/sqlstore"
	"github.com/vidyanandsawai-25/NtisPlatform-WTIS/internal/application"
)

type services struct {
	organizations        *application.OrganizationService
	floors               *application.FloorService
	subFloors            *application.SubFloorService
	constructionTypes    *application.ConstructionTypeService
	zones                *application.ZoneService
	wards                *application.WardService
	pipeSizes            *application.PipeSizeService
	connectionTypes      *application.ConnectionTypeService
	connectionCategories *application.ConnectionCategoryService
	rates                *application.RateService
	consumers            *application.ConsumerService
}

func newServices(s *sqlstore.Store, rt application.Runtime) *services {
	return &services{
		organizations:        application.NewOrganizationService(s.Organizations, s.UoW, rt),
		floors:               application.NewFloorService(s.Floors, s.UoW, rt),
		subFloors:            application.NewSubFloorService(s.SubFloors, s.UoW, rt),
		constructionTypes:    application.NewConstructionTypeService(s.ConstructionTypes, s.UoW, rt),
		zones:                application.NewZoneService(s.Zones, s.UoW, rt),
		wards:                application.NewWardService(s.Wards, s.Zones, s.UoW, rt),
		pipeSizes:            application.NewPipeSizeService(s.PipeSizes, s.UoW, rt),
		connectionTypes:      application.NewConnectionTypeService(s.ConnectionTypes, s.UoW, rt),
		connectionCategories: application.NewConnectionCategoryService(s.ConnectionCategories, s.UoW, rt),
		rates: application.NewRateService(s.Rates, application.RateReferences{
			Zones:                s.Zones,
			Wards:                s.Wards,
			PipeSizes:            s.PipeSizes,
			ConnectionTypes:      s.ConnectionTypes,
			ConnectionCategories: s.ConnectionCategories,
		}, s.UoW, rt),
		consumers: application.NewConsumerService(s.ConsumerAccounts, application.ConsumerReferences{
			ConnectionTypes:      s.ConnectionTypes,
			ConnectionCategories: s.ConnectionCategories,
			PipeSizes:            s.PipeSizes,
		}, rt),
	}
}
