package v1alpha1

import (
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/orchestrators/character"
)

func convertResolveRequest(req *ResolveConfigurationRequest) *character.ResolveConfigurationInput {
	return &character.ResolveConfigurationInput{
		BodyType:   sprite.BodyType(req.BodyType),
		BodyColor:  req.BodyColor,
		Animations: req.Animations,
		Selections: catalog.Selections(req.Selections),
	}
}

func convertParameterToProto(record sprite.ParameterRecord) *Parameter {
	return &Parameter{
		ID:                  record.ID,
		ParentName:          record.ParentName,
		Variant:             record.Variant,
		Value:               record.Value,
		MatchBodyColor:      record.MatchBodyColor,
		SupportedAnimations: record.SupportedAnimations,
	}
}

func convertConfigurationToProto(config *sprite.Configuration) *Configuration {
	if config == nil {
		return nil
	}
	return &Configuration{
		BodyType:   string(config.BodyType),
		BodyColor:  config.BodyColor,
		Animations: config.Animations,
		Equipment:  config.Equipment,
	}
}

func convertConfigurationFromProto(config *Configuration) *sprite.Configuration {
	if config == nil {
		return nil
	}
	equipment := config.Equipment
	if equipment == nil {
		equipment = map[string]string{}
	}
	return &sprite.Configuration{
		BodyType:   sprite.BodyType(config.BodyType),
		BodyColor:  config.BodyColor,
		Animations: config.Animations,
		Equipment:  equipment,
	}
}

func convertSpritesheetToProto(sheet *sprite.Spritesheet) *Spritesheet {
	if sheet == nil {
		return nil
	}

	credits := make([]*Credit, 0, len(sheet.Credits))
	for _, credit := range sheet.Credits {
		credits = append(credits, &Credit{
			File:     credit.File,
			Authors:  credit.Authors,
			Licenses: credit.Licenses,
			URLs:     credit.URLs,
		})
	}

	return &Spritesheet{
		ID:            sheet.ID,
		Configuration: convertConfigurationToProto(sheet.Configuration),
		ImageData:     sheet.ImageData,
		MIMEType:      sheet.MIMEType,
		Credits:       credits,
		CreatedAt:     sheet.CreatedAt,
		ExpiresAt:     sheet.ExpiresAt,
	}
}
