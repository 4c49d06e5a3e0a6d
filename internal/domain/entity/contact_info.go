package entity

// ContactInfoID el registro de contacto es único (id = 1).
const ContactInfoID int64 = 1

// SocialLink red social de la empresa.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// AboutSection sección "sobre la empresa".
type AboutSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ContactInfo datos de contacto de la empresa (singleton).
type ContactInfo struct {
	ID           ID             `json:"id"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Address      string         `json:"address"`
	WorkingHours string         `json:"workingHours"`
	MapEmbed     string         `json:"mapEmbed"`
	Social       []SocialLink   `json:"social"`
	About        []AboutSection `json:"about"`
}

// ContactInfoPatch actualización parcial.
// Social/About nil = no enviado (se conserva el valor previo);
// puntero a lista vacía = borrado intencional.
type ContactInfoPatch struct {
	Phone        *string
	Email        *string
	Address      *string
	WorkingHours *string
	MapEmbed     *string
	Social       *[]SocialLink
	About        *[]AboutSection
}

// Apply devuelve una copia de c con los campos del patch aplicados.
func (p ContactInfoPatch) Apply(c ContactInfo) ContactInfo {
	c = c.Clone()
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.WorkingHours != nil {
		c.WorkingHours = *p.WorkingHours
	}
	if p.MapEmbed != nil {
		c.MapEmbed = *p.MapEmbed
	}
	if p.Social != nil {
		c.Social = append([]SocialLink{}, (*p.Social)...)
	}
	if p.About != nil {
		c.About = append([]AboutSection{}, (*p.About)...)
	}
	return c
}

// Clone copia profunda.
func (c ContactInfo) Clone() ContactInfo {
	if c.Social != nil {
		c.Social = append([]SocialLink{}, c.Social...)
	}
	if c.About != nil {
		c.About = append([]AboutSection{}, c.About...)
	}
	return c
}
