package synthetic

// Shared vocabularies used across the per-domain generators. Units and
// courses are shared between domains so that cross-domain filters on the
// dashboard line up.

// Units lists every campus of the institution.
var Units = []string{
	"IFPB - Campus Campina Grande",
	"IFPB - Campus Cajazeiras",
	"IFPB - Campus Sousa",
	"IFPB - Campus Patos",
	"IFPB - Campus Princesa Isabel",
	"IFPB - Campus Picuí",
	"IFPB - Campus Monteiro",
	"IFPB - Campus Guarabira",
	"IFPB - Campus João Pessoa",
	"IFPB - Campus Cabedelo",
	"IFPB - Campus Santa Rita",
	"IFPB - Campus Esperança",
	"IFPB - Campus Itabaiana",
	"IFPB - Campus Itaporanga",
	"IFPB - Campus Catolé do Rocha",
	"IFPB - Campus Areia",
	"IFPB - Campus Queimadas",
	"IFPB - Campus Alagoa Grande",
	"IFPB - Campus Pedras de Fogo",
	"IFPB - Campus Mamanguape",
	"IFPB - Campus Sapé",
}

// Courses lists the full course catalogue.
var Courses = []string{
	"Técnico em Informática",
	"Técnico em Eletrônica",
	"Técnico em Edificações",
	"Técnico em Agropecuária",
	"Técnico em Mecânica",
	"Técnico em Química",
	"Técnico em Segurança do Trabalho",
	"Técnico em Administração",
	"Técnico em Contabilidade",
	"Técnico em Recursos Humanos",
	"Técnico em Logística",
	"Técnico em Meio Ambiente",
	"Técnico em Enfermagem",
	"Técnico em Nutrição e Dietética",
	"Técnico em Turismo",
	"Bacharelado em Sistemas de Informação",
	"Bacharelado em Administração",
	"Bacharelado em Ciências Contábeis",
	"Bacharelado em Arquitetura e Urbanismo",
	"Licenciatura em Matemática",
	"Licenciatura em Física",
	"Licenciatura em Química",
	"Licenciatura em Biologia",
	"Licenciatura em Letras",
	"Licenciatura em Pedagogia",
	"Tecnologia em Análise e Desenvolvimento de Sistemas",
	"Tecnologia em Redes de Computadores",
	"Tecnologia em Gestão Comercial",
	"Tecnologia em Gestão Pública",
	"Tecnologia em Alimentos",
	"Tecnologia em Automação Industrial",
	"Engenharia Civil",
	"Engenharia Elétrica",
	"Engenharia Mecânica",
	"Engenharia de Computação",
	"Engenharia de Produção",
	"Engenharia Ambiental",
}

// Modalities of course delivery.
var Modalities = []string{"Presencial", "EAD", "Semipresencial"}

// CourseLevels offered by the institution.
var CourseLevels = []string{"Técnico", "Graduação", "Pós-graduação"}

// Genders used in demographic breakdowns.
var Genders = []string{"Masculino", "Feminino"}

// NeedTypes classifies special educational needs.
var NeedTypes = []string{"Auditiva", "Visual", "Física", "Intelectual", "Múltipla"}

// AgeBrackets used by the assistance breakdowns.
var AgeBrackets = []string{"16-20", "21-25", "26-30", "31+"}

// AssistancePrograms lists the student assistance programs.
var AssistancePrograms = []string{
	"Auxílio Alimentação",
	"Auxílio Transporte",
	"Auxílio Moradia",
	"Auxílio Didático",
	"Bolsa Monitoria",
	"Bolsa Iniciação Científica",
}

// BudgetCategories follows the public budget classification.
var BudgetCategories = []string{
	"Pessoal e Encargos Sociais",
	"Custeio",
	"Investimentos",
	"Manutenção",
	"Equipamentos",
	"Obras",
}

// PublicationTypes of scientific production.
var PublicationTypes = []string{
	"Artigos",
	"Capítulos de Livros",
	"Trabalhos em Eventos",
	"Livros",
	"Patentes",
}

// KnowledgeAreas used by the research domain.
var KnowledgeAreas = []string{
	"Ciências Exatas",
	"Engenharias",
	"Ciências da Computação",
	"Educação",
	"Ciências Sociais",
	"Ciências Agrárias",
}

// ManifestationTypes of ombudsman requests.
var ManifestationTypes = []string{
	"Reclamação",
	"Sugestão",
	"Elogio",
	"Denúncia",
	"Solicitação",
}

// UserTypes of people interacting with institutional services.
var UserTypes = []string{
	"Estudante",
	"Servidor",
	"Comunidade Externa",
	"Responsável",
}

// Sectors of economic activity for labor-market outcomes.
var Sectors = []string{
	"Administração Pública",
	"Educação",
	"Saúde",
	"Comércio",
	"Indústria",
	"Serviços",
	"Agricultura",
	"Construção Civil",
	"Tecnologia",
	"Turismo",
}

// Regions of the country for labor-market outcomes.
var Regions = []string{"Norte", "Nordeste", "Centro-Oeste", "Sudeste", "Sul"}

// leadAuthorFirstNames feeds the research lead-author field.
var leadAuthorFirstNames = []string{"João", "Maria", "Pedro", "Ana", "Carlos", "Lucia"}

// generalKeywords apply to research output of any knowledge area.
var generalKeywords = []string{
	"inovação", "tecnologia", "desenvolvimento", "pesquisa", "ciência",
	"sustentabilidade", "interdisciplinar", "metodologia", "análise", "estudo",
}

// areaKeywords maps a knowledge area to its keyword bank.
var areaKeywords = map[string][]string{
	"Ciências Exatas":         {"matemática", "estatística", "álgebra", "cálculo", "geometria", "análise"},
	"Engenharias":             {"automação", "robótica", "eletrônica", "mecânica", "civil", "sistemas"},
	"Ciências da Computação":  {"machine learning", "programação", "algoritmos", "inteligência artificial", "redes", "software"},
	"Educação":                {"ensino", "aprendizagem", "pedagogia", "didática", "formação", "educação"},
	"Ciências Sociais":        {"sociedade", "cultura", "política", "economia", "social", "humanas"},
	"Ciências Agrárias":       {"agricultura", "sustentabilidade", "agronegócio", "biotecnologia", "solo", "plantas"},
}
