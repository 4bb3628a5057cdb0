package i18n

var messages = map[Language]map[string]string{
	English: {
		"nav.home":     "Home",
		"nav.about":    "About",
		"nav.projects": "Projects",
		"nav.skills":   "Skills",
		"nav.contact":  "Contact",

		"hero.name":        "Tony Larren",
		"hero.tagline":     "Software developer - Ai/Data Enthusiast",
		"hero.description": "Software developer specializing in creating applications and exploring AI/data solutions.",
		"hero.cta":         "View Projects",
		"hero.downloadCV":  "Download CV",

		"about.title":       "About Me",
		"about.description": "I'm a developer specializing in modern web and mobile applications, with a passion for leveraging artificial intelligence to create better user experiences. I'm always eager to learn new tools and technologies to expand my skill set.",
		"about.experience":  "Years of Experience",
		"about.projects":    "Projects Completed",
		"about.clients":     "Happy Clients",

		"projects.title":            "Featured Projects",
		"projects.description":      "Here are some of my recent projects that showcase my skills and experience.",
		"projects.noDescription":    "No description available.",
		"projects.empty":            "No projects to show yet.",
		"projects.notFound":         "Project not found",
		"projects.viewLive":         "View Live",
		"projects.viewCode":         "View Code",
		"projects.about":            "About This Project",
		"projects.keyFeatures":      "Key Features",
		"projects.technologies":     "Technologies Used",
		"projects.techStack":        "Technical Stack",
		"projects.underDevelopment": "Under Development",

		"common.backToHome": "Back to Home",

		"skills.title":             "Skills & Technologies",
		"skills.description":       "Technologies I work with to bring your ideas to life.",
		"skills.category.frontend": "Frontend Development",
		"skills.category.backend":  "Backend Development",
		"skills.category.mobile":   "Mobile Development",
		"skills.category.data":     "Database & Cloud",
		"skills.category.tools":    "Tools & DevOps",

		"contact.title":          "Get In Touch",
		"contact.description":    "Let's discuss your next project. I'm always interested in new opportunities.",
		"contact.info.title":     "Contact Information",
		"contact.info.email":     "Email",
		"contact.info.phone":     "Phone",
		"contact.info.location":  "Location",
		"contact.social.title":   "Follow Me",
		"contact.form.name":      "Your Name",
		"contact.form.email":     "Your Email",
		"contact.form.message":   "Your Message",
		"contact.form.send":      "Send Message",
		"contact.form.success":   "Message sent successfully!",
		"contact.form.error":     "Error sending message. Please try again.",
		"contact.form.throttled": "Please wait a moment before sending another message.",

		"footer.rights":    "All rights reserved.",
		"footer.builtWith": "Built with Go & Fiber",
	},
	French: {
		"nav.home":     "Accueil",
		"nav.about":    "À Propos",
		"nav.projects": "Projets",
		"nav.skills":   "Compétences",
		"nav.contact":  "Contact",

		"hero.name":        "Tony Larren",
		"hero.tagline":     "Software developer - Ai/Data Enthusiast",
		"hero.description": "Développeur logiciel spécialisé dans la création d'applications et l'exploration de solutions IA/data.",
		"hero.cta":         "Voir les Projets",
		"hero.downloadCV":  "Télécharger CV",

		"about.title":       "À Propos de Moi",
		"about.description": "Je suis développeur spécialisé dans les applications web et mobiles modernes, passionné par l'intelligence artificielle pour créer de meilleures expériences utilisateur. Je suis toujours avide d'apprendre de nouveaux outils et technologies pour approfondir mes compétences.",
		"about.experience":  "Années d'Expérience",
		"about.projects":    "Projets Réalisés",
		"about.clients":     "Clients Satisfaits",

		"projects.title":            "Projets Sélectionnés",
		"projects.description":      "Voici quelques-uns de mes projets récents qui mettent en valeur mes compétences et mon expérience.",
		"projects.noDescription":    "Aucune description disponible.",
		"projects.empty":            "Aucun projet pour le moment.",
		"projects.notFound":         "Projet introuvable",
		"projects.viewLive":         "Voir Démo",
		"projects.viewCode":         "Voir Code",
		"projects.about":            "À Propos de Ce Projet",
		"projects.keyFeatures":      "Fonctionnalités Clés",
		"projects.technologies":     "Technologies Utilisées",
		"projects.techStack":        "Stack Technique",
		"projects.underDevelopment": "En Développement",

		"common.backToHome": "Retour à l'Accueil",

		"skills.title":             "Compétences & Technologies",
		"skills.description":       "Technologies avec lesquelles je travaille pour donner vie à vos idées.",
		"skills.category.frontend": "Développement Frontend",
		"skills.category.backend":  "Développement Backend",
		"skills.category.mobile":   "Développement Mobile",
		"skills.category.data":     "Base de Données & Cloud",
		"skills.category.tools":    "Outils & DevOps",

		"contact.title":          "Prenons Contact",
		"contact.description":    "Discutons de votre prochain projet. Je suis toujours intéressé par de nouvelles opportunités.",
		"contact.info.title":     "Informations de Contact",
		"contact.info.email":     "Email",
		"contact.info.phone":     "Téléphone",
		"contact.info.location":  "Localisation",
		"contact.social.title":   "Suivez-moi",
		"contact.form.name":      "Votre Nom",
		"contact.form.email":     "Votre Email",
		"contact.form.message":   "Votre Message",
		"contact.form.send":      "Envoyer le Message",
		"contact.form.success":   "Message envoyé avec succès !",
		"contact.form.error":     "Erreur lors de l'envoi. Veuillez réessayer.",
		"contact.form.throttled": "Merci de patienter avant d'envoyer un autre message.",

		"footer.rights":    "Tous droits réservés.",
		"footer.builtWith": "Créé avec Go & Fiber",
	},
}
